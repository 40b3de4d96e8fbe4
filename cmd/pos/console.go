package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pos-tracker/internal/models"
	"pos-tracker/internal/service"
	"pos-tracker/internal/store"
)

// console is the local presentation layer: a line-oriented driver for the
// inventory service. It only ever calls the service contract.
type console struct {
	inventory *service.InventoryService
	in        io.Reader
	out       io.Writer
}

func newConsole(inventory *service.InventoryService, in io.Reader, out io.Writer) *console {
	return &console{inventory: inventory, in: in, out: out}
}

func (c *console) run(ctx context.Context) {
	fmt.Fprintln(c.out, "pos-tracker console. Type 'help' for commands.")

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return
		}
		if err := c.dispatch(ctx, cmd, args); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

func (c *console) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		c.printHelp()
	case "list":
		c.list(ctx, args)
	case "add":
		return c.add(ctx, args)
	case "update":
		return c.update(ctx, args)
	case "delete":
		return c.delete(ctx, args)
	case "sell":
		return c.sell(ctx, args)
	case "restock":
		return c.restock(ctx, args)
	case "log":
		c.printLog(ctx)
	case "recent":
		c.recent(ctx, args)
	case "dashboard":
		c.dashboard(ctx)
	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return nil
}

func (c *console) printHelp() {
	fmt.Fprint(c.out, `commands:
  list [name|price|stock]                      show catalog
  add <name> <category> <price> <qty> [desc]   add product
  update <id> <name> <category> <price> <qty> [desc]
  delete <id>
  sell <id> <qty>
  restock <id> <qty>
  log                                          show transaction ledger
  recent [n]                                   recent sales (default 5)
  dashboard                                    show KPIs
  quit
`)
}

func (c *console) list(ctx context.Context, args []string) {
	products := c.inventory.Products(ctx)
	if len(args) > 0 {
		store.SortProducts(products, args[0])
	}
	if len(products) == 0 {
		fmt.Fprintln(c.out, "catalog is empty")
		return
	}
	for _, p := range products {
		fmt.Fprintf(c.out, "%4d  %-24s %-12s R%8.2f  stock %4d  %s\n",
			p.ID, p.Name, p.Category, p.Price, p.Quantity,
			c.inventory.StockStatusOf(p.Quantity))
	}
}

func parseDraft(args []string) (models.ProductDraft, error) {
	if len(args) < 4 {
		return models.ProductDraft{}, fmt.Errorf("need <name> <category> <price> <qty>")
	}
	price, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return models.ProductDraft{}, fmt.Errorf("bad price %q", args[2])
	}
	qty, err := strconv.Atoi(args[3])
	if err != nil {
		return models.ProductDraft{}, fmt.Errorf("bad quantity %q", args[3])
	}
	return models.ProductDraft{
		Name:        args[0],
		Category:    args[1],
		Price:       price,
		Quantity:    qty,
		Description: strings.Join(args[4:], " "),
	}, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad product id %q", arg)
	}
	return id, nil
}

func (c *console) add(ctx context.Context, args []string) error {
	draft, err := parseDraft(args)
	if err != nil {
		return err
	}
	product, err := c.inventory.AddProduct(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "added %q with id %d\n", product.Name, product.ID)
	return nil
}

func (c *console) update(ctx context.Context, args []string) error {
	if len(args) < 5 {
		return fmt.Errorf("need <id> <name> <category> <price> <qty>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	draft, err := parseDraft(args[1:])
	if err != nil {
		return err
	}
	product, err := c.inventory.UpdateProduct(ctx, id, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "updated product %d\n", product.ID)
	return nil
}

func (c *console) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("need <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := c.inventory.DeleteProduct(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "deleted product %d\n", id)
	return nil
}

func (c *console) sell(ctx context.Context, args []string) error {
	id, qty, err := parseIDQty(args)
	if err != nil {
		return err
	}
	product, entry, err := c.inventory.SellProduct(ctx, id, qty)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "sold %d x %s, %d remaining\n",
		entry.Quantity, product.Name, entry.RemainingStock)
	return nil
}

func (c *console) restock(ctx context.Context, args []string) error {
	id, qty, err := parseIDQty(args)
	if err != nil {
		return err
	}
	product, entry, err := c.inventory.RestockProduct(ctx, id, qty)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "restocked %d x %s, %d on hand\n",
		entry.Quantity, product.Name, entry.RemainingStock)
	return nil
}

func parseIDQty(args []string) (int64, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("need <id> <qty>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, 0, err
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad quantity %q", args[1])
	}
	return id, qty, nil
}

func (c *console) printLog(ctx context.Context) {
	transactions := c.inventory.Transactions(ctx)
	if len(transactions) == 0 {
		fmt.Fprintln(c.out, "no transactions recorded yet")
		return
	}
	for _, t := range transactions {
		fmt.Fprintf(c.out, "%s  %-10s %-24s qty %4d  remaining %4d\n",
			t.Timestamp.Local().Format("02 Jan 2006 15:04"),
			t.Action, t.ProductName, t.Quantity, t.RemainingStock)
	}
	summary := c.inventory.LedgerSummary(ctx)
	fmt.Fprintf(c.out, "total %d | sales %d | restocks %d\n",
		summary.TotalEntries, summary.Sales, summary.Restocks)
}

func (c *console) recent(ctx context.Context, args []string) {
	n := 5
	if len(args) > 0 {
		if parsed, err := strconv.Atoi(args[0]); err == nil && parsed > 0 {
			n = parsed
		}
	}
	for _, t := range c.inventory.RecentSales(ctx, n) {
		fmt.Fprintf(c.out, "%s  %-24s qty %4d\n",
			t.Timestamp.Local().Format("02 Jan 2006 15:04"), t.ProductName, t.Quantity)
	}
}

func (c *console) dashboard(ctx context.Context) {
	m := c.inventory.DashboardMetrics(ctx)
	fmt.Fprintf(c.out, "products: %d | low stock: %d | items sold: %d | est. revenue: R%.2f\n",
		m.TotalProducts, m.LowStockCount, m.ItemsSold, m.EstimatedRevenue)
}
