package domain

import (
	"errors"
	"strings"
)

var (
	MessageSuccessGetTips   = "tips retrieved successfully"
	MessageSuccessSaveTip   = "tip saved successfully"
	MessageSuccessDeleteTip = "tip deleted successfully"

	MessageFailedGetTips   = "failed to retrieve tips"
	MessageFailedSaveTip   = "failed to save tip"
	MessageFailedDeleteTip = "failed to delete tip"

	ErrTipNotFound        = errors.New("tip not found")
	ErrInvalidTipCategory = errors.New("invalid tip category")
)

const (
	TipFoodGroups = "food_groups"
	TipHydration  = "hydration"
	TipReduction  = "reduction"
	TipHabits     = "habits"
	TipSavings    = "savings"
)

var TipCategories = []string{TipFoodGroups, TipHydration, TipReduction, TipHabits, TipSavings}

var tipAliases = map[string]string{
	"grupos":      TipFoodGroups,
	"hidratacion": TipHydration,
	"reduccion":   TipReduction,
	"habitos":     TipHabits,
	"ahorro":      TipSavings,
}

// ParseTipCategory accepts a category name or its Spanish alias in any case.
func ParseTipCategory(s string) (string, bool) {
	key := accentFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range TipCategories {
		if c == key {
			return c, true
		}
	}
	c, ok := tipAliases[key]
	return c, ok
}

type (
	TipRequest struct {
		Title       string `json:"title" validate:"required,max=200"`
		Description string `json:"description" validate:"required"`
		Category    string `json:"category" validate:"required"`
	}

	TipFilter struct {
		Categories []string `query:"category"`
		Query      string   `query:"q"`
	}

	Tip struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
)
