package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"voiceorder-service/internal/ordering/model"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	badColor  = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Show which menu alias a spoken name resolves to",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := loadEngine()
		if err != nil {
			return err
		}
		m := eng.Resolve(strings.Join(args, " "))
		if jsonOut {
			return printJSON(m)
		}
		if m.Matched {
			okColor.Printf("%s -> %s (%.1f)\n", m.Input, m.Name, m.Score)
			return nil
		}
		warnColor.Printf("%s: no confident match", m.Input)
		if m.Alias != "" {
			dimColor.Printf(" (best %q at %.1f)", m.Alias, m.Score)
		}
		fmt.Println()
		return nil
	},
}

var (
	priceQty   int
	priceStyle string
)

var priceCmd = &cobra.Command{
	Use:   "price <name>",
	Short: "Price one item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := loadEngine()
		if err != nil {
			return err
		}
		q := eng.Price(strings.Join(args, " "), priceQty, priceStyle)
		if jsonOut {
			return printJSON(q)
		}
		line := fmt.Sprintf("%s x%d [%s]  unit %s  total %s", q.Name, q.Quantity, q.Style, q.Unit.StringFixed(2), q.Line.StringFixed(2))
		if q.Outcome == model.OutcomeFound {
			okColor.Printf("%s  (%s)\n", line, q.Source)
			return nil
		}
		badColor.Printf("%s  %s\n", line, q.Outcome)
		return nil
	},
}

var orderItems []string

var orderCmd = &cobra.Command{
	Use:     "order",
	Short:   "Price a whole cart",
	Example: `  menuctl order --item "garlic naan:2" --item "gobi manchurian:1:dry:extra spicy"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reqs, err := parseItems(orderItems)
		if err != nil {
			return err
		}
		if len(reqs) == 0 {
			return fmt.Errorf("no items, use --item name:qty[:style[:notes]]")
		}
		eng, _, err := loadEngine()
		if err != nil {
			return err
		}
		res := eng.Order(reqs)
		if jsonOut {
			return printJSON(res)
		}
		for _, l := range res.Breakdown {
			text := fmt.Sprintf("%-28s x%-3d %-10s %8s", l.Resolved, l.Quantity, l.Style, l.LineTotal.StringFixed(2))
			if l.Status == model.OutcomeFound {
				fmt.Println(text)
				continue
			}
			badColor.Printf("%s  %s", text, l.Status)
			if len(l.Suggestions) > 0 {
				dimColor.Printf("  did you mean: %s", strings.Join(l.Suggestions, ", "))
			}
			fmt.Println()
		}
		okColor.Printf("%-52s %8s\n", "TOTAL", res.TotalPrice.StringFixed(2))
		return nil
	},
}

var aliasesQuery string

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "List resolvable aliases, or suggestions for --query",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := loadEngine()
		if err != nil {
			return err
		}
		idx := store.Snapshot()
		list := idx.Aliases()
		if aliasesQuery != "" {
			list = idx.Suggest(aliasesQuery, suggest)
		}
		if jsonOut {
			return printJSON(list)
		}
		for _, a := range list {
			owner := ""
			if e, ok := idx.Owner(a); ok {
				owner = e.Name
			}
			fmt.Printf("%-32s ", a)
			dimColor.Println(owner)
		}
		st := idx.Stats()
		if st.Duplicates > 0 || st.Unnamed > 0 {
			warnColor.Printf("duplicates: %d, unnamed: %d\n", st.Duplicates, st.Unnamed)
		}
		return nil
	},
}

func init() {
	priceCmd.Flags().IntVarP(&priceQty, "qty", "q", 1, "quantity")
	priceCmd.Flags().StringVarP(&priceStyle, "style", "s", "standard", "style or variation type")
	orderCmd.Flags().StringArrayVarP(&orderItems, "item", "i", nil, "cart line name:qty[:style[:notes]], repeatable")
	aliasesCmd.Flags().StringVarP(&aliasesQuery, "query", "q", "", "show suggestions for this name")
}
