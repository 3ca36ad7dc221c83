package actions

import (
	"log"
	"strings"
)

// stageColorPalette maps the color names the assistant is prompted with to
// their canonical hex values. The kanban board renders these directly.
var stageColorPalette = map[string]string{
	"red":     "#ef4444",
	"orange":  "#f97316",
	"amber":   "#f59e0b",
	"yellow":  "#eab308",
	"lime":    "#84cc16",
	"green":   "#22c55e",
	"emerald": "#10b981",
	"teal":    "#14b8a6",
	"cyan":    "#06b6d4",
	"sky":     "#0ea5e9",
	"blue":    "#3b82f6",
	"indigo":  "#6366f1",
	"violet":  "#8b5cf6",
	"purple":  "#a855f7",
	"fuchsia": "#d946ef",
	"pink":    "#ec4899",
	"rose":    "#f43f5e",
	"gray":    "#6b7280",
}

const defaultStageColor = "#3b82f6" // blue

// NormalizeStageColor turns a color name or hex value into the canonical hex
// form stored on a stage. Unknown names fall back to the default color.
func NormalizeStageColor(input string) string {
	color := strings.ToLower(strings.TrimSpace(input))
	if color == "" {
		return defaultStageColor
	}
	if strings.HasPrefix(color, "#") {
		return color
	}
	if hex, ok := stageColorPalette[color]; ok {
		return hex
	}
	log.Printf("⚠️ Unknown stage color %q - using default %s", input, defaultStageColor)
	return defaultStageColor
}
