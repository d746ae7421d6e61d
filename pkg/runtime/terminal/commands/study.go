package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/boca-banker/boca-banker/pkg/adapters"
	"github.com/boca-banker/boca-banker/pkg/models/api"
	"github.com/boca-banker/boca-banker/pkg/runtime/terminal/export"
	"github.com/boca-banker/boca-banker/pkg/services/study"
)

// studyFile is the on-disk study input, loaded with viper so YAML, TOML and
// JSON all work.
type studyFile struct {
	PropertyAddress string  `mapstructure:"property_address"`
	PropertyType    string  `mapstructure:"property_type"`
	PurchasePrice   float64 `mapstructure:"purchase_price"`
	BuildingValue   float64 `mapstructure:"building_value"`
	LandValue       float64 `mapstructure:"land_value"`
	StudyYear       int     `mapstructure:"study_year"`
	TaxRate         float64 `mapstructure:"tax_rate"`
	DiscountRate    float64 `mapstructure:"discount_rate"`
	BonusRate       float64 `mapstructure:"bonus_rate"`
	Assets          []struct {
		Category       string  `mapstructure:"category"`
		CostBasis      float64 `mapstructure:"cost_basis"`
		RecoveryPeriod float64 `mapstructure:"recovery_period"`
	} `mapstructure:"assets"`
}

type StudyCmd struct {
	inputPath  string
	calculator study.Calculator
	reporter   *export.Reporter
}

func NewStudyCmd(calculator study.Calculator, reporter *export.Reporter) *cobra.Command {
	sc := &StudyCmd{calculator: calculator, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Calculate a cost segregation study from an input file",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.inputPath, "input", "", "Path to the study input file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (sc *StudyCmd) run(cmd *cobra.Command, args []string) error {
	v := viper.New()
	v.SetConfigFile(sc.inputPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read study input: %w", err)
	}

	var file studyFile
	if err := v.Unmarshal(&file); err != nil {
		return fmt.Errorf("failed to parse study input: %w", err)
	}

	req := api.StudyRequest{
		PropertyAddress: file.PropertyAddress,
		PropertyType:    file.PropertyType,
		PurchasePrice:   file.PurchasePrice,
		BuildingValue:   file.BuildingValue,
		LandValue:       file.LandValue,
		StudyYear:       file.StudyYear,
		TaxRate:         file.TaxRate,
		DiscountRate:    file.DiscountRate,
		BonusRate:       file.BonusRate,
	}
	for _, asset := range file.Assets {
		req.Assets = append(req.Assets, api.StudyAsset{
			Category:       asset.Category,
			CostBasis:      asset.CostBasis,
			RecoveryPeriod: asset.RecoveryPeriod,
		})
	}

	report, err := sc.calculator.Generate(adapters.MapStudyRequestApiToDomain(req))
	if err != nil {
		return fmt.Errorf("failed to calculate study: %w", err)
	}

	return sc.reporter.HandleReport(adapters.MapStudyReportDomainToApi(report))
}
