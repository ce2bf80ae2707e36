package env

import (
	"fmt"
	"os"

	"swertres_backend/internal/config"

	"gopkg.in/yaml.v3"
)

// gameYAML - структура секции game в config.yaml
type gameYAML struct {
	Game struct {
		DrawSlots []string           `yaml:"draw_slots"`
		Payouts   map[string]float64 `yaml:"payouts"`
	} `yaml:"game"`
}

type gameConfig struct {
	drawSlots []string
	payouts   map[string]float64
}

// NewGameConfigFromYAML - загрузка игровой конфигурации
// (слоты тиражей, множители выплат) из yaml файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var parsed gameYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if len(parsed.Game.DrawSlots) == 0 {
		return nil, fmt.Errorf("game config: draw_slots is empty")
	}
	if len(parsed.Game.Payouts) == 0 {
		return nil, fmt.Errorf("game config: payouts is empty")
	}

	return &gameConfig{
		drawSlots: parsed.Game.DrawSlots,
		payouts:   parsed.Game.Payouts,
	}, nil
}

func (cfg *gameConfig) DrawSlots() []string {
	return cfg.drawSlots
}

func (cfg *gameConfig) PayoutMultiplier(game string) float64 {
	return cfg.payouts[game]
}
