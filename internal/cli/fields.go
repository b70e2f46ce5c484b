package cli

import (
	"github.com/spf13/cobra"

	"github.com/asset-tracker/internal/domain"
)

// textFlag связывает строковый флаг с полем запроса
type textFlag struct {
	name  string
	value *string
	dst   *string
}

// overlay переносит в запрос только явно заданные флаги
func overlay(cmd *cobra.Command, fields []textFlag) {
	for _, f := range fields {
		if cmd.Flags().Changed(f.name) {
			*f.dst = *f.value
		}
	}
}

// overlayDecimal разбирает числовой флаг, если он задан
func overlayDecimal(cmd *cobra.Command, name, raw string, dst **float64) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := domain.ParseDecimal(name, raw)
	if err != nil {
		return err
	}
	*dst = &v
	return nil
}
