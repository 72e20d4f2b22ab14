package assess

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed advice.yaml
var adviceYAML []byte

// adviceCatalog holds the per-category traveler advice lists, in priority
// order: the first entries are the most generally useful.
type adviceCatalog struct {
	Carrier  []string `yaml:"carrier"`
	Weather  []string `yaml:"weather"`
	Security []string `yaml:"security"`
}

var catalog = mustCatalog()

func mustCatalog() adviceCatalog {
	var c adviceCatalog
	if err := yaml.Unmarshal(adviceYAML, &c); err != nil {
		panic("assess: parse embedded advice catalog: " + err.Error())
	}
	return c
}

// Suggestion thresholds are deliberately looser than the risk-level
// boundaries: advice is worth surfacing before a category turns MEDIUM.
const totalDelayAdviceMinutes = 20

const bufferAdvice = "High total predicted delay; consider alternative flights or adding buffer time."

// Suggestions assembles traveler advice for one flight from its delay
// components. Heavier delays pull in the top five tips for a category,
// lighter ones just the first.
func Suggestions(carrierMinutes, weatherMinutes, securityMinutes, totalMinutes int) []string {
	var out []string
	out = append(out, tiered(catalog.Carrier, carrierMinutes, 15, 5)...)
	out = append(out, tiered(catalog.Weather, weatherMinutes, 10, 5)...)
	out = append(out, tiered(catalog.Security, securityMinutes, 5, 2)...)
	if totalMinutes > totalDelayAdviceMinutes {
		out = append(out, bufferAdvice)
	}
	return out
}

func tiered(tips []string, minutes, heavy, light int) []string {
	switch {
	case minutes > heavy:
		if len(tips) > 5 {
			return tips[:5]
		}
		return tips
	case minutes > light:
		if len(tips) > 0 {
			return tips[:1]
		}
	}
	return nil
}
