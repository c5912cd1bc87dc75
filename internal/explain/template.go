// Package explain produces the natural-language explanations attached to
// ranked recommendations, via the generative model when available and a
// deterministic template otherwise.
package explain

import (
	"fmt"
	"strings"

	"github.com/jonathan/tool-recommender/internal/types"
)

// maxTemplateTags caps how many matched tags the template mentions.
const maxTemplateTags = 3

// TemplateExplanation builds a deterministic explanation without the
// generative model. Every field is guaranteed non-empty.
func TemplateExplanation(tool *types.Tool, matchedTags []string) types.Explanation {
	return types.Explanation{
		WhyRecommended: templateWhy(tool, matchedTags),
		BestFor:        templateBestFor(tool, matchedTags),
		WhenNotToUse:   templateWhenNot(tool),
	}
}

func templateWhy(tool *types.Tool, matchedTags []string) string {
	var sb strings.Builder
	if len(matchedTags) > 0 {
		tags := matchedTags
		if len(tags) > maxTemplateTags {
			tags = tags[:maxTemplateTags]
		}
		sb.WriteString(fmt.Sprintf("%s matches your needs for %s.", tool.Name, joinNatural(tags)))
	} else {
		sb.WriteString(fmt.Sprintf("%s is a strong overall fit for what you described.", tool.Name))
	}

	switch tool.Pricing.Model {
	case types.PricingFree:
		sb.WriteString(" It's free to use.")
	case types.PricingFreemium:
		sb.WriteString(" It has a free tier so you can try it before paying.")
	case types.PricingPaid:
		if tool.Pricing.StartingPrice != "" {
			sb.WriteString(fmt.Sprintf(" Paid plans start at %s.", tool.Pricing.StartingPrice))
		} else {
			sb.WriteString(" It's a paid tool.")
		}
	}
	return sb.String()
}

func templateBestFor(tool *types.Tool, matchedTags []string) string {
	if len(tool.BestFor) > 0 {
		return tool.BestFor[0]
	}
	if len(matchedTags) > 0 {
		tags := matchedTags
		if len(tags) > maxTemplateTags {
			tags = tags[:maxTemplateTags]
		}
		return fmt.Sprintf("Users focused on %s.", joinNatural(tags))
	}
	return fmt.Sprintf("General-purpose use of %s.", tool.Name)
}

func templateWhenNot(tool *types.Tool) string {
	if len(tool.NotGoodFor) > 0 {
		return tool.NotGoodFor[0]
	}
	switch tool.LearningCurve {
	case types.CurveHigh:
		return "It has a steep learning curve, so expect to invest time before it pays off."
	case types.CurveLow:
		return "If you need deep customization, a more specialized tool may serve you better."
	default:
		return "If your needs are very specific, compare it against more focused alternatives first."
	}
}

// joinNatural joins tags as "a", "a and b", or "a, b and c".
func joinNatural(tags []string) string {
	switch len(tags) {
	case 0:
		return ""
	case 1:
		return tags[0]
	default:
		return strings.Join(tags[:len(tags)-1], ", ") + " and " + tags[len(tags)-1]
	}
}
