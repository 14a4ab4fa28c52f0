package ai

import (
	"context"
	"strings"
)

// ResolveCountryTimezone maps a free-form country or city name to an IANA
// timezone identifier. It returns "" when the model fails, declines, or
// produces something that does not look like Region/City.
func (g *Gateway) ResolveCountryTimezone(ctx context.Context, country string) string {
	raw, err := g.generate(ctx, g.countryTimeout, countrySystem, countryPrompt(country))
	if err != nil {
		g.log.Warn().Err(err).Str("country", country).Msg("country timezone resolution failed")
		return ""
	}

	answer := strings.TrimSpace(cleanModelJSON(raw))
	if answer == "" || strings.EqualFold(answer, "none") {
		return ""
	}
	// An IANA identifier has exactly one separator, e.g. Asia/Tashkent.
	if strings.Count(answer, "/") != 1 || strings.ContainsAny(answer, " \n\t") {
		g.log.Warn().Str("raw", raw).Msg("country timezone response is not an IANA identifier")
		return ""
	}
	return answer
}
