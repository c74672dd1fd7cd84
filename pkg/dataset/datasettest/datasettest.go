// Package datasettest generates small farm and market datasets for tests.
package datasettest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const farmHeader = "Farm_ID,Soil_pH,Soil_Moisture,Temperature_C,Rainfall_mm,Crop_Type,Fertilizer_Usage_kg,Pesticide_Usage_kg,Crop_Yield_ton,Sustainability_Score"

const marketHeader = "Market_ID,Product,Market_Price_per_ton,Demand_Index,Supply_Index,Competitor_Price_per_ton,Economic_Indicator,Weather_Impact_Score,Seasonal_Factor,Consumer_Trend_Index"

// FarmCSV returns a farmer advisor dataset covering all four crops.
func FarmCSV(rows int) string {
	crops := []string{"Rice", "Wheat", "Corn", "Soybean"}
	var b strings.Builder
	b.WriteString(farmHeader + "\n")
	for i := 0; i < rows; i++ {
		temp := 15 + float64(i%20)
		yield := 2 + temp/10 + float64(i%4)*0.5
		fmt.Fprintf(&b, "%d,%.1f,%.2f,%.1f,%d,%s,%d,%d,%.3f,%d\n",
			i+1, 5.5+float64(i%15)/10, 0.5+float64(i%3)/10, temp, 500+i*10,
			crops[i%len(crops)], 80+i%40, 3+i%5, yield, 5+i%5)
	}
	return b.String()
}

// MarketCSV returns a market researcher dataset whose last column is the target.
func MarketCSV(rows int) string {
	products := []string{"Rice", "Wheat", "Corn", "Soybean"}
	seasons := []string{"Low", "Medium", "High"}
	var b strings.Builder
	b.WriteString(marketHeader + "\n")
	for i := 0; i < rows; i++ {
		price := 250 + float64(i%25)*4
		fmt.Fprintf(&b, "%d,%s,%.1f,%d,%d,%.1f,%.2f,%.2f,%s,%.2f\n",
			i+1, products[i%4], price, 80+i%40, 70+i%30, price-10+float64(i%5),
			0.5+float64(i%10)/10, 0.1+float64(i%9)/10, seasons[i%3], 50+price/10)
	}
	return b.String()
}

// Write stores content under the test's temp dir and returns the path.
func Write(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
