package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroadvisor/pkg/advisor"
	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/market"
)

func report(t *testing.T, c crop.Crop, edit func(*advisor.PredictionInput)) string {
	t.Helper()
	in := advisor.InputFromDefaults(crop.Defaults(crop.MustLookup(c)))
	edit(&in)
	b, err := advisor.Recommend(in)
	require.NoError(t, err)
	out, err := FarmReport(advisor.Assess(4.2, 3.9), b)
	require.NoError(t, err)
	return out
}

func TestFarmReportColdRice(t *testing.T) {
	out := report(t, crop.Rice, func(in *advisor.PredictionInput) { in.TemperatureC = 15 })

	assert.True(t, strings.HasPrefix(out, "**Predicted Rice Yield: 4.20 tons/ha**"))
	assert.Contains(t, out, "excellent growing conditions")
	assert.Contains(t, out, "Low Temperature Management Plan")
	assert.Contains(t, out, "temperature of 15°C is below the optimal range for Rice (20°C to 35°C)")
	assert.Contains(t, out, "Wait until soil temperature reaches 20°C")
	assert.Contains(t, out, "Maintain soil moisture at 0.6 for temperature buffering")
	assert.NotContains(t, out, "High Temperature")
}

func TestFarmReportHotCorn(t *testing.T) {
	out := report(t, crop.Corn, func(in *advisor.PredictionInput) { in.TemperatureC = 40 })
	assert.Contains(t, out, "High Temperature Management Plan")
	assert.Contains(t, out, "Shift planting window by 2-3 weeks to avoid peak summer")
}

func TestFarmReportAlkalineWheat(t *testing.T) {
	out := report(t, crop.Wheat, func(in *advisor.PredictionInput) { in.SoilPH = 7.5 })
	assert.Contains(t, out, "Alkaline Soil Management Program")
	assert.Contains(t, out, "Total requirement: 400 kg/ha")
	assert.Contains(t, out, "soil pH of 7.5")
}

func TestFarmReportAcidicCorn(t *testing.T) {
	out := report(t, crop.Corn, func(in *advisor.PredictionInput) { in.SoilPH = 5 })
	assert.Contains(t, out, "Apply 2000 kg/ha agricultural lime")
}

func TestFarmReportDroughtCorn(t *testing.T) {
	out := report(t, crop.Corn, func(in *advisor.PredictionInput) { in.RainfallMM = 400 })
	assert.Contains(t, out, "### Rainfall is insufficient (400mm)")
	assert.Contains(t, out, "Install drip irrigation with emitters every 45cm")
	assert.Contains(t, out, "Maintain pressure at 1.0-1.5 bar")
	assert.Contains(t, out, "Apply mulch (corn stalks, 5-7cm thick)")
	assert.Contains(t, out, "     - Tasseling (55-65 DAS)\n")
}

func TestFarmReportAlwaysHasGrowthAndNutrients(t *testing.T) {
	out := report(t, crop.Soybean, func(*advisor.PredictionInput) {})
	assert.NotContains(t, out, "Temperature Management")
	assert.NotContains(t, out, "Soil Management")
	assert.NotContains(t, out, "Rainfall is insufficient")

	assert.Contains(t, out, "### Soybean Growth Stage Management")
	assert.Contains(t, out, "**5. Maturity & Harvest** (100-120 days):\n\n- Monitor pod dryness\n")
	assert.Contains(t, out, "- Mo: 2kg/ha")
	assert.Contains(t, out, "- Nitrogen: Light green plants - Apply 15kg N/ha")

	growth := strings.Index(out, "Growth Stage Management")
	nutrients := strings.Index(out, "Nutrient Management Guide")
	assert.Less(t, growth, nutrients)
}

func TestFarmReportNeedsAttention(t *testing.T) {
	b, err := advisor.Recommend(advisor.InputFromDefaults(crop.Defaults(crop.MustLookup(crop.Wheat))))
	require.NoError(t, err)
	out, err := FarmReport(advisor.Assess(3.9, 3.9), b)
	require.NoError(t, err)
	assert.Contains(t, out, "some areas that need attention")
}

func TestProfileSummary(t *testing.T) {
	out := ProfileSummary(crop.MustLookup(crop.Rice))
	assert.Contains(t, out, "### Optimal Conditions for Rice")
	assert.Contains(t, out, "- Temperature Range: 20°C to 35°C")
	assert.Contains(t, out, "- Soil pH: 5.5 to 6.5")
	assert.Contains(t, out, "- Rainfall Requirement: 1000-2000 mm")
	assert.Contains(t, out, "- Soil Moisture: 0.6-0.8")
	assert.Contains(t, out, "- Growing Period: 90-120 days")
}

func TestMarketReport(t *testing.T) {
	a := market.Analysis{
		Prediction:  90,
		TargetMean:  100,
		Score:       90,
		Performance: market.Below,
		Risks: []market.Risk{
			{Category: market.CategoryPrice, Below: 2, Total: 2, Alert: true},
			{Category: market.CategoryMarket, Below: 1, Total: 2},
			{Category: market.CategoryEconomic, Below: 2, Total: 3, Alert: true},
		},
	}
	out, err := MarketReport(a)
	require.NoError(t, err)

	assert.Contains(t, out, "**Predicted Market Outcome: 90.00**")
	assert.Contains(t, out, "**Market Performance: 90.0%** of average")
	assert.Contains(t, out, "Short-term Strategy")
	assert.NotContains(t, out, "Growth Strategy")
	assert.Contains(t, out, "**High Price Risk Detected** (2 of 2 indicators below average)")
	assert.NotContains(t, out, "Market Risk Alert")
	assert.Contains(t, out, "**Economic Risk Factors**")
	assert.Contains(t, out, "- Prepare contingency plans")
	assert.Contains(t, out, "#### Immediate Actions (0-3 months)")
	assert.Contains(t, out, "#### Long-term Strategy (3-12 months)")

	a.Performance = market.Above
	a.Risks = nil
	out, err = MarketReport(a)
	require.NoError(t, err)
	assert.Contains(t, out, "Growth Strategy")
	assert.Contains(t, out, "### Risk Assessment & Recommendations\n\n### Strategic Action Plan")
	assert.NotContains(t, out, "Risk Detected")
	assert.NotContains(t, out, "Risk Alert")
	assert.NotContains(t, out, "Risk Factors")
}

func TestHTML(t *testing.T) {
	out := report(t, crop.Corn, func(in *advisor.PredictionInput) { in.RainfallMM = 400 })
	h, err := HTML(out)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(h)))
	require.NoError(t, err)
	assert.Equal(t, "Detailed Recommendations for Corn", doc.Find("h2").First().Text())
	assert.Equal(t, "Rainfall is insufficient (400mm)", doc.Find(`h3:contains("Rainfall")`).Text())
	assert.Positive(t, doc.Find("li").Length())

	h, err = HTML("<script>alert(1)</script>\n\ntext")
	require.NoError(t, err)
	assert.NotContains(t, string(h), "<script>")
}
