package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/boca-banker/boca-banker/pkg/adapters"
	"github.com/boca-banker/boca-banker/pkg/models/api"
	"github.com/boca-banker/boca-banker/pkg/models/domain"
	"github.com/boca-banker/boca-banker/pkg/runtime/terminal/export"
	"github.com/boca-banker/boca-banker/pkg/services/allocation"
)

type AllocationCmd struct {
	propertyType  string
	buildingValue float64
	reporter      *export.Reporter
}

func NewAllocationCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AllocationCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "allocation",
		Short: "Show the default asset allocation for a property type",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.propertyType, "type", "", "Property type (e.g. commercial, multifamily)")
	cmd.Flags().Float64Var(&ac.buildingValue, "value", 0, "Building value in dollars")

	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func (ac *AllocationCmd) run(cmd *cobra.Command, args []string) error {
	propertyType := domain.PropertyType(ac.propertyType)
	if !propertyType.Known() {
		return fmt.Errorf("unknown property type %q", ac.propertyType)
	}
	if ac.buildingValue <= 0 {
		return fmt.Errorf("building value must be positive, got %v", ac.buildingValue)
	}

	items, err := allocation.DefaultAllocation(propertyType, decimal.NewFromFloat(ac.buildingValue))
	if err != nil {
		return fmt.Errorf("failed to build allocation: %w", err)
	}

	return ac.reporter.HandleAllocation(api.AllocationResponse{
		PropertyType:  ac.propertyType,
		BuildingValue: ac.buildingValue,
		Items:         adapters.MapAllocationDomainToApi(items),
	})
}
