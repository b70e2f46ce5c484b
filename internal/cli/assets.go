package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/dto"
	"github.com/asset-tracker/internal/ui"
)

// assetListOptions - флаги команды "assets list"
type assetListOptions struct {
	sortBy  string
	order   string
	filters []string
	min     string
	max     string
	from    string
	to      string
}

func newAssetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Add, update, list and delete assets",
	}
	cmd.AddCommand(
		newAssetsAddCmd(a),
		newAssetsUpdateCmd(a),
		newAssetsListCmd(a),
		newAssetsDeleteCmd(a),
	)
	return cmd
}

func newAssetsListCmd(a *app) *cobra.Command {
	opts := &assetListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets with optional filters and sorting",
		Long: `List assets.

Filters are case-sensitive substring matches and combine with AND.
Value and date ranges are inclusive; both bounds must be given.

Examples:
  assetctl assets list --sort-by value --order DESC
  assetctl assets list -f city=Kyiv -f name=Lap
  assetctl assets list --min 10 --max 500 --from 01-01-2024 --to 31-12-2024`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := opts.query()
			if err != nil {
				return err
			}

			assets, err := a.assetService.List(cmd.Context(), query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(assets) == 0 {
				fmt.Fprintln(out, ui.FormatWarning("No assets found"))
				return nil
			}
			fmt.Fprint(out, assetTable(assets).Render())
			fmt.Fprintln(out, ui.FormatMuted(fmt.Sprintf("%d asset(s)", len(assets))))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.sortBy, "sort-by", "", "Column to sort by")
	cmd.Flags().StringVar(&opts.order, "order", "ASC", "Sort order: ASC or DESC")
	cmd.Flags().StringArrayVarP(&opts.filters, "filter", "f", nil, "Substring filter as column=value (repeatable)")
	cmd.Flags().StringVar(&opts.min, "min", "", "Minimum value (inclusive)")
	cmd.Flags().StringVar(&opts.max, "max", "", "Maximum value (inclusive)")
	cmd.Flags().StringVar(&opts.from, "from", "", "Earliest date received, DD-MM-YYYY")
	cmd.Flags().StringVar(&opts.to, "to", "", "Latest date received, DD-MM-YYYY")

	return cmd
}

// query превращает флаги в параметры выборки
func (o *assetListOptions) query() (*dto.ListAssetsQuery, error) {
	query := &dto.ListAssetsQuery{
		SortBy:    o.sortBy,
		SortOrder: o.order,
		Filters:   make(map[string]string, len(o.filters)),
	}

	for _, f := range o.filters {
		col, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, domain.NewValidationError("filter", fmt.Sprintf("%q is not column=value", f))
		}
		query.Filters[col] = value
	}

	if (o.min == "") != (o.max == "") {
		return nil, domain.NewValidationError("value", "--min and --max must be given together")
	}
	if o.min != "" {
		minValue, err := domain.ParseDecimal("min", o.min)
		if err != nil {
			return nil, err
		}
		maxValue, err := domain.ParseDecimal("max", o.max)
		if err != nil {
			return nil, err
		}
		query.Value = &dto.ValueRange{Min: minValue, Max: maxValue}
	}

	if (o.from == "") != (o.to == "") {
		return nil, domain.NewValidationError("date_received", "--from and --to must be given together")
	}
	if o.from != "" {
		query.Date = &dto.DateRange{Start: o.from, End: o.to}
	}

	return query, nil
}

func assetTable(assets []domain.Asset) *ui.Table {
	table := ui.NewTable(
		ui.TableColumn{Header: "ID", Align: ui.AlignRight},
		ui.TableColumn{Header: "Name"},
		ui.TableColumn{Header: "Value", Align: ui.AlignRight},
		ui.TableColumn{Header: "Responsible"},
		ui.TableColumn{Header: "Bought at"},
		ui.TableColumn{Header: "Address"},
		ui.TableColumn{Header: "Room"},
		ui.TableColumn{Header: "Received"},
		ui.TableColumn{Header: "Description"},
	)
	for _, asset := range assets {
		table.AddRow(
			strconv.FormatInt(asset.ID, 10),
			asset.Name,
			strconv.FormatFloat(asset.Value, 'f', 2, 64),
			asset.ResponsiblePerson,
			asset.PurchasePlace,
			fmt.Sprintf("%s, %s %s", asset.City, asset.Street, asset.BuildingNumber),
			asset.Room,
			asset.DateReceived,
			asset.Description,
		)
	}
	return table
}

// assetFlags - поля имущества, задаваемые флагами add и update
type assetFlags struct {
	name          string
	description   string
	value         string
	responsible   string
	purchasePlace string
	city          string
	street        string
	building      string
	room          string
	date          string
}

func (f *assetFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "Asset name")
	flags.StringVar(&f.description, "description", "", "Free-form description")
	flags.StringVar(&f.value, "value", "", "Monetary value")
	flags.StringVar(&f.responsible, "responsible", "", "Responsible person")
	flags.StringVar(&f.purchasePlace, "purchase-place", "", "Where the asset was bought")
	flags.StringVar(&f.city, "city", "", "City")
	flags.StringVar(&f.street, "street", "", "Street")
	flags.StringVar(&f.building, "building", "", "Building number")
	flags.StringVar(&f.room, "room", "", "Room")
	flags.StringVar(&f.date, "date", "", "Date received, DD-MM-YYYY")
}

// apply накладывает заданные флаги на запрос
func (f *assetFlags) apply(cmd *cobra.Command, req *dto.AssetRequest) error {
	overlay(cmd, []textFlag{
		{name: "name", value: &f.name, dst: &req.Name},
		{name: "description", value: &f.description, dst: &req.Description},
		{name: "responsible", value: &f.responsible, dst: &req.ResponsiblePerson},
		{name: "purchase-place", value: &f.purchasePlace, dst: &req.PurchasePlace},
		{name: "city", value: &f.city, dst: &req.City},
		{name: "street", value: &f.street, dst: &req.Street},
		{name: "building", value: &f.building, dst: &req.BuildingNumber},
		{name: "room", value: &f.room, dst: &req.Room},
		{name: "date", value: &f.date, dst: &req.DateReceived},
	})
	return overlayDecimal(cmd, "value", f.value, &req.Value)
}

func assetRequestFrom(asset *domain.Asset) *dto.AssetRequest {
	value := asset.Value
	return &dto.AssetRequest{
		Name:              asset.Name,
		Description:       asset.Description,
		Value:             &value,
		ResponsiblePerson: asset.ResponsiblePerson,
		PurchasePlace:     asset.PurchasePlace,
		City:              asset.City,
		Street:            asset.Street,
		BuildingNumber:    asset.BuildingNumber,
		Room:              asset.Room,
		DateReceived:      asset.DateReceived,
	}
}

func newAssetsAddCmd(a *app) *cobra.Command {
	fields := &assetFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an asset",
		Long: `Add an asset.

Required: --name --value --city --street --building --room --date.

Example:
  assetctl assets add --name Laptop --value 1200 --city Kyiv --street Main \
    --building 1 --room 10 --date 15-03-2024`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := &dto.AssetRequest{}
			if err := fields.apply(cmd, req); err != nil {
				return err
			}

			asset, err := a.assetService.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess(fmt.Sprintf("Asset %d added", asset.ID)))
			return nil
		},
	}
	fields.bind(cmd)

	return cmd
}

func newAssetsUpdateCmd(a *app) *cobra.Command {
	fields := &assetFlags{}

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an asset, changing only the given fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := a.assetService.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			req := assetRequestFrom(current)
			if err := fields.apply(cmd, req); err != nil {
				return err
			}

			if _, err := a.assetService.Update(cmd.Context(), id, req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess(fmt.Sprintf("Asset %d updated", id)))
			return nil
		},
	}
	fields.bind(cmd)

	return cmd
}

func newAssetsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an asset by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.assetService.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess(fmt.Sprintf("Asset %d deleted", id)))
			return nil
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", fmt.Sprintf("%q is not a positive integer", raw))
	}
	return id, nil
}
