package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Gunvolt24/checkout_gate/config"
	"github.com/Gunvolt24/checkout_gate/internal/inventory"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
	"github.com/Gunvolt24/checkout_gate/internal/promotion"
	"github.com/Gunvolt24/checkout_gate/pkg/validate"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Validate baskets from a file or stdin",
		Long: `Validate baskets from --in (stdin when empty, read as jsonl).
Store stock comes from --inventory ({"store": {"sku": qty}}),
active promotions from --promotions ({"sku": [{"promotion_id": "...", "attributes": {...}}]}).
Rule settings come from CHECKOUT_CHECKOUT_* / CHECKOUT_INVENTORY_* environment, flags override them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, _ := cmd.Flags().GetString("in")
			formatStr, _ := cmd.Flags().GetString("format")
			inventoryPath, _ := cmd.Flags().GetString("inventory")
			promotionsPath, _ := cmd.Flags().GetString("promotions")
			taxRequired, _ := cmd.Flags().GetBool("tax")

			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			checker, err := buildFileChecker(settings, inventoryPath, promotionsPath, taxRequired)
			if err != nil {
				return err
			}

			format := validate.InputFormat(formatStr)
			// stdin вариант: считаем, что jsonl
			if inputPath == "" {
				inputPath = "/dev/stdin"
				if format == validate.FormatAuto {
					format = validate.FormatJSONL
				}
			}

			summary, err := validate.ValidateFile(cmd.Context(), checker, inputPath, format, cmd.OutOrStdout())
			printSummary(cmd.ErrOrStderr(), summary, err)
			if err != nil {
				return fmt.Errorf("validation: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("in", "", "path to input (.json or .jsonl); stdin when empty")
	cmd.Flags().String("format", string(validate.FormatAuto), "input format: auto|json|jsonl")
	cmd.Flags().String("inventory", "", "store stock fixture (JSON); empty means no stock anywhere")
	cmd.Flags().String("promotions", "", "active promotions fixture (JSON)")
	cmd.Flags().Bool("tax", false, "require calculated tax")
	cmd.Flags().String("default-shipment", "", "id of the ship-to-address shipment")
	cmd.Flags().Int("limited-stock-sentinel", 0, "store quantity treated as insufficient")
	cmd.Flags().Bool("ignore-max-quantity", false, "skip max order quantity check")
	cmd.Flags().String("inventory-strategy", "", "store|basket")
	cmd.Flags().String("class-layout", "", "class date layout (Go time format)")
	cmd.Flags().String("class-timezone", "", "class date timezone, e.g. America/Chicago")

	return cmd
}

// loadSettings — настройки правил из окружения, явно заданные флаги имеют приоритет.
func loadSettings(cmd *cobra.Command) (validate.Settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return validate.Settings{}, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	c := cfg.Checkout
	if flags.Changed("default-shipment") {
		c.DefaultShipmentID, _ = flags.GetString("default-shipment")
	}
	if flags.Changed("limited-stock-sentinel") {
		c.LimitedStockSentinel, _ = flags.GetInt("limited-stock-sentinel")
	}
	if flags.Changed("ignore-max-quantity") {
		c.IgnoreMaxQuantity, _ = flags.GetBool("ignore-max-quantity")
	}
	if flags.Changed("inventory-strategy") {
		c.InventoryStrategy, _ = flags.GetString("inventory-strategy")
	}
	if flags.Changed("class-layout") {
		c.ClassDateLayout, _ = flags.GetString("class-layout")
	}
	if flags.Changed("class-timezone") {
		c.ClassTimezone, _ = flags.GetString("class-timezone")
	}

	settings, err := validate.NewSettings(c, cfg.Inventory)
	if err != nil {
		return validate.Settings{}, fmt.Errorf("checkout settings: %w", err)
	}
	return settings, nil
}

func buildFileChecker(settings validate.Settings, inventoryPath, promotionsPath string, taxRequired bool) (validate.FileChecker, error) {
	lookup := inventory.NewStaticLookup(nil)
	if inventoryPath != "" {
		l, err := inventory.LoadStaticLookup(inventoryPath)
		if err != nil {
			return validate.FileChecker{}, err
		}
		lookup = l
	}

	var promotions ports.PromotionCatalog
	if promotionsPath != "" {
		c, err := promotion.LoadStaticCatalog(promotionsPath)
		if err != nil {
			return validate.FileChecker{}, err
		}
		promotions = c
	}

	evaluator, err := validate.NewInventoryEvaluator(settings, lookup, inventory.NewLookupBasketChecker(lookup, settings))
	if err != nil {
		return validate.FileChecker{}, err
	}

	return validate.FileChecker{
		Snapshot:    validate.NewSnapshotValidator(),
		Checkout:    validate.NewCheckoutValidator(settings, evaluator, promotions),
		TaxRequired: taxRequired,
	}, nil
}

func printSummary(w io.Writer, summary validate.Summary, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s %v (%s)\n", color.New(color.FgRed, color.Bold).Sprint("validation failed:"), err, summary)
		return
	}
	fmt.Fprintf(w, "%s %s / %s / %s\n",
		color.New(color.FgGreen).Sprint("validation ok:"),
		color.New(color.FgGreen).Sprintf("%d allowed", summary.Allowed),
		color.New(color.FgYellow).Sprintf("%d blocked", summary.Blocked),
		color.New(color.FgRed).Sprintf("%d invalid", summary.Invalid),
	)
}
