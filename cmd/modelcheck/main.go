// Command modelcheck loads the suitability model artifacts and runs a probe
// prediction, so a deploy can verify the artifacts before starting the server.
package main

import (
	"fmt"
	"os"

	"dr-dine-be/internal/config"
	"dr-dine-be/pkg/health"
	"dr-dine-be/pkg/suitability"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	color.Cyan("=== Suitability Model Check ===")
	fmt.Printf("Encoder:    %s\n", cfg.Model.EncoderPath)
	fmt.Printf("Classifier: %s\n", cfg.Model.ClassifierPath)
	fmt.Printf("Decoder:    %s\n", cfg.Model.DecoderPath)
	fmt.Println()

	predictor, err := suitability.LoadPredictor(
		cfg.Model.EncoderPath,
		cfg.Model.ClassifierPath,
		cfg.Model.DecoderPath,
	)
	if err != nil {
		color.Red("✗ FAIL: %v", err)
		os.Exit(1)
	}
	color.Green("✓ Artifacts loaded")

	probeFood := "Oatmeal"
	if len(os.Args) > 1 {
		probeFood = os.Args[1]
	}

	for _, condition := range health.SupportedConditions {
		ok, err := predictor.Suitable(probeFood, condition)
		if err != nil {
			color.Red("✗ %-28s prediction failed: %v", condition, err)
			os.Exit(1)
		}
		if ok {
			color.Green("✓ %-28s suitable", condition)
		} else {
			color.Yellow("- %-28s not suitable", condition)
		}
	}
}
