// Command listing resolves one listing and prints what the page would show.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/farbarter/goapi/app/internal/resolver"
	"github.com/farbarter/goapi/base/config"
	"github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/domain"
	"github.com/farbarter/goapi/stores/listing/presenter"
)

var (
	configPath = pflag.String("config", config.DefaultPath, "path of the yaml config")
	listingId  = pflag.String("id", "", "listing id to resolve")
	count      = pflag.Bool("count", false, "print the number of listings created on the contract")
)

type output struct {
	Listing *domain.ListingDetails `json:"listing,omitempty"`
	Stats   *presenter.Stats       `json:"stats,omitempty"`
	Action  *presenter.ActionState `json:"action,omitempty"`
	View    presenter.ViewState    `json:"view"`
	Meta    presenter.PageMetadata `json:"meta"`
	Error   string                 `json:"error,omitempty"`
}

func main() {
	pflag.Parse()
	if err := config.Load(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	code := run(ctx.Background())
	log.Sync()
	os.Exit(code)
}

func run(context ctx.Ctx) int {
	stack, err := resolver.New(context)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer stack.Chain.Close()

	if *count {
		n, err := stack.Farbarter.ListingCount(context)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(n)
		return 0
	}

	id := *listingId
	if id == "" && pflag.NArg() > 0 {
		id = pflag.Arg(0)
	}

	details, resolveErr := stack.Listing.GetListingDetails(context, id)
	out := output{
		View: presenter.ToViewState(details, resolveErr),
		Meta: presenter.ToPageMetadata(context, details, resolveErr),
	}
	if resolveErr != nil {
		out.Error = resolveErr.Error()
	} else {
		stats := presenter.ToStats(details)
		action := presenter.PurchaseGate(details.IsActive, details.RemainingSupply, false)
		out.Listing, out.Stats, out.Action = details, &stats, &action
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if resolveErr != nil {
		return 1
	}
	return 0
}
