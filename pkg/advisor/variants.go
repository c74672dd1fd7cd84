package advisor

import "agroadvisor/pkg/crop"

// variant is the crop-specific data the selector interpolates into its sections.
type variant struct {
	plantingShift    string
	limeKgHa         int
	sulfurKgHa       int
	emitterSpacingCM int
	pressureBar      string
	mulch            string
	criticalStages   []CriticalStage
	practices        [5][]string
	base             []NutrientDose
	stageNutrients   []StageNutrient
	deficiencies     []Deficiency
}

var phaseNames = [5]string{
	"Land Preparation & Planting",
	"Early Vegetative Stage",
	"Mid-Season",
	"Reproductive Stage",
	"Maturity & Harvest",
}

// windows for the first four phases; the last uses the crop's growing period.
var phaseWindows = [4]string{"0-15 days", "15-45 days", "45-75 days", "75-100 days"}

var variants = map[crop.Crop]variant{
	crop.Rice: {
		plantingShift:    "3-4 weeks",
		limeKgHa:         2000,
		sulfurKgHa:       300,
		emitterSpacingCM: 30,
		pressureBar:      "1.5-2.0 bar",
		mulch:            "rice straw",
		criticalStages: []CriticalStage{
			{"Tillering", "20-25"},
			{"Panicle initiation", "45-50"},
			{"Flowering", "70-75"},
		},
		practices: [5][]string{
			{"Puddling to 15cm depth", "Level field with laser leveler", "Pre-soak seeds for 24 hours", "Seed rate: 40-50 kg/ha"},
			{"Maintain 2-5cm water level", "First N split (50 kg/ha)", "Monitor for leaf folder", "Start weed management"},
			{"Panicle initiation stage", "Second N split (30 kg/ha)", "Monitor for blast disease", "Maintain water depth"},
			{"Grain filling period", "Maintain water level", "Monitor for grain discoloration", "Bird control measures"},
			{"Drain field 10 days before harvest", "Check grain moisture (20-22%)", "Harvest at 80% mature grains", "Proper drying to 14%"},
		},
		base: []NutrientDose{
			{"N", "40kg/ha at planting"},
			{"P", "All 60kg/ha as basal"},
			{"K", "40kg/ha at planting"},
			{"Zn", "25kg/ha ZnSO4"},
		},
		stageNutrients: []StageNutrient{
			{"Tillering", "40kg N/ha"},
			{"Panicle", "40kg N/ha + 20kg K/ha"},
			{"Heading", "Foliar K if needed"},
		},
		deficiencies: []Deficiency{
			{"Nitrogen", "Yellowing of older leaves", "Topdress 20kg N/ha"},
			{"Phosphorus", "Purple leaf edges", "Foliar DAP 2%"},
			{"Potassium", "Leaf tip burning", "Apply 20kg K/ha"},
		},
	},
	crop.Wheat: {
		plantingShift:    "4-5 weeks",
		limeKgHa:         1500,
		sulfurKgHa:       400,
		emitterSpacingCM: 30,
		pressureBar:      "1.0-1.5 bar",
		mulch:            "wheat straw",
		criticalStages: []CriticalStage{
			{"Crown root initiation", "20-25"},
			{"Tillering", "35-45"},
			{"Grain filling", "60-70"},
		},
		practices: [5][]string{
			{"Deep plowing to 20cm", "Fine seedbed preparation", "Seed treatment with fungicide", "Seed rate: 100-120 kg/ha"},
			{"First irrigation at CRI stage", "Top dress N (40 kg/ha)", "Watch for aphids", "Control broad-leaf weeds"},
			{"Boot to heading stage", "Final N application", "Watch for rust/smut", "Flag leaf protection"},
			{"Grain development", "Moisture stress sensitive", "Watch for head scab", "Plan harvest timing"},
			{"Monitor grain moisture", "Harvest at 12-14% moisture", "Proper storage preparation", "Quality assessment"},
		},
		base: []NutrientDose{
			{"N", "30kg/ha at sowing"},
			{"P", "All 50kg/ha as basal"},
			{"K", "All 50kg/ha as basal"},
			{"S", "20kg/ha"},
		},
		stageNutrients: []StageNutrient{
			{"Tillering", "35kg N/ha"},
			{"Stem extension", "35kg N/ha"},
			{"Pre-heading", "Foliar micro-nutrients"},
		},
		deficiencies: []Deficiency{
			{"Nitrogen", "Pale green leaves", "Apply 30kg N/ha"},
			{"Phosphorus", "Dark green-purple leaves", "Foliar P 2%"},
			{"Potassium", "Yellow leaf margins", "Apply 25kg K/ha"},
		},
	},
	crop.Corn: {
		plantingShift:    "2-3 weeks",
		limeKgHa:         2000,
		sulfurKgHa:       400,
		emitterSpacingCM: 45,
		pressureBar:      "1.0-1.5 bar",
		mulch:            "corn stalks",
		criticalStages: []CriticalStage{
			{"V6-V8 stage", "30-40"},
			{"Tasseling", "55-65"},
			{"Grain filling", "75-85"},
		},
		practices: [5][]string{
			{"Primary tillage 25-30cm deep", "Create raised beds 75cm apart", "Seed treatment with metalaxyl", "Seed rate: 20-25 kg/ha"},
			{"V4-V8 stage management", "Side-dress N (60 kg/ha)", "Scout for fall armyworm", "Inter-row cultivation"},
			{"Tasseling and silking", "Foliar spray if needed", "Irrigation critical", "Disease monitoring"},
			{"Kernel filling stage", "Maintain soil moisture", "Stalk rot monitoring", "Plan harvesting"},
			{"Monitor black layer formation", "Harvest at 20-25% moisture", "Proper drying essential", "Storage preparation"},
		},
		base: []NutrientDose{
			{"N", "60kg/ha at planting"},
			{"P", "All 75kg/ha as basal"},
			{"K", "50kg/ha split"},
			{"Zn", "10kg/ha"},
		},
		stageNutrients: []StageNutrient{
			{"V6", "45kg N/ha"},
			{"V12", "45kg N/ha + 25kg K/ha"},
			{"Tasseling", "Foliar Zn if needed"},
		},
		deficiencies: []Deficiency{
			{"Nitrogen", "V-shaped yellowing", "Apply 40kg N/ha"},
			{"Phosphorus", "Purple stem/leaves", "Foliar P 2.5%"},
			{"Potassium", "Leaf edge necrosis", "Apply 30kg K/ha"},
		},
	},
	crop.Soybean: {
		plantingShift:    "3-4 weeks",
		limeKgHa:         1500,
		sulfurKgHa:       300,
		emitterSpacingCM: 45,
		pressureBar:      "1.0-1.5 bar",
		mulch:            "organic mulch",
		criticalStages: []CriticalStage{
			{"V3-V4 stage", "25-30"},
			{"Flowering", "45-55"},
			{"Pod filling", "70-80"},
		},
		practices: [5][]string{
			{"Minimum tillage system", "Inoculate seeds with Rhizobium", "Plant 3-4cm deep", "Seed rate: 65-75 kg/ha"},
			{"Maintain optimal moisture", "Apply P and K if needed", "Monitor for pod borers", "Control early weeds"},
			{"Flowering stage", "Moisture critical", "Disease scouting", "Beneficial insect conservation"},
			{"Pod filling stage", "Maintain soil moisture", "Pod disease monitoring", "Plan harvest timing"},
			{"Monitor pod dryness", "Harvest at 13-15% moisture", "Careful threshing", "Proper storage conditions"},
		},
		base: []NutrientDose{
			{"N", "Starter dose only"},
			{"P", "All 60kg/ha as basal"},
			{"K", "All 40kg/ha as basal"},
			{"Mo", "2kg/ha"},
		},
		stageNutrients: []StageNutrient{
			{"V4", "10kg N/ha if needed"},
			{"R1", "20kg K/ha"},
			{"R3", "Foliar nutrients if needed"},
		},
		deficiencies: []Deficiency{
			{"Nitrogen", "Light green plants", "Apply 15kg N/ha"},
			{"Phosphorus", "Dark green-stunted", "Foliar P 2%"},
			{"Potassium", "Yellow leaf edges", "Apply 20kg K/ha"},
		},
	},
}
