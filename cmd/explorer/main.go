package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/matst80/slask-storefront/pkg/config"
	"github.com/matst80/slask-storefront/pkg/discovery"
	"github.com/matst80/slask-storefront/pkg/logging"
	"github.com/matst80/slask-storefront/pkg/storage"
	"github.com/matst80/slask-storefront/pkg/types"
	"go.uber.org/zap"
)

func main() {
	var (
		dataDir    string
		configPath string
		logLevel   string
		pages      int
	)

	flag.StringVar(&dataDir, "data", "data", "Catalog directory holding categories.json and products.json")
	flag.StringVar(&configPath, "config", "", "Path to a config file (yaml, json or toml)")
	flag.StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	flag.IntVar(&pages, "more", 0, "Number of extra pages to load before printing a result")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)
	defer func() {
		_ = log.Sync()
	}()

	brands, err := cfg.BrandResolver()
	if err != nil {
		log.Fatal("Invalid brand table", zap.Error(err))
	}

	catalog, err := storage.NewDiskStorage(dataDir, log).LoadCatalog()
	if err != nil {
		log.Fatal("Failed to load catalog", zap.String("dir", dataDir), zap.Error(err))
	}
	log.Info("Catalog loaded",
		zap.Int("categories", len(catalog.Categories)),
		zap.Int("products", len(catalog.Products)),
		zap.Int("skipped", catalog.Skipped))

	engine := discovery.NewEngine(discovery.EngineOptions{
		PageSize:    cfg.PageSize,
		SettleDelay: cfg.SettleDelay,
		Brands:      brands,
		CountFacets: cfg.CountFacets,
		Logger:      log,
	})

	switch args[0] {
	case "tree":
		printTree(engine.Tree(catalog.Categories).Roots, 0)
	case "query":
		raw := ""
		if len(args) > 1 {
			raw = args[1]
		}
		res, err := runQuery(engine, catalog, raw, pages, log)
		if err != nil {
			log.Fatal("Invalid query", zap.String("query", raw), zap.Error(err))
		}
		printJson(res, log)
	case "brands":
		for _, name := range brands.Names() {
			fmt.Println(name)
		}
	default:
		printUsage()
		os.Exit(1)
	}
}

func runQuery(engine *discovery.Engine, catalog *storage.Catalog, raw string, pages int, log *zap.Logger) (discovery.Result, error) {
	q, err := types.ParseFacetQueryString(raw)
	if err != nil {
		return discovery.Result{}, err
	}
	if _, ok := types.ParseSortKey(q.Sort); !ok {
		log.Warn("Unknown sort key, using featured", zap.String("sort", q.Sort))
	}
	tree := engine.Tree(catalog.Categories)
	for _, c := range q.Categories {
		if _, ok := tree.Expand(c); !ok {
			log.Warn("Unknown category in query", zap.String("category", c))
		}
	}
	state := q.ToState(tree, engine.PageSize())
	for range pages {
		state = state.LoadMore(engine.PageSize())
	}
	log.Debug("Computing results",
		zap.Strings("categories", state.CategoryIds.Sorted()),
		zap.Bool("active", state.HasActiveFilters()),
		zap.String("sort", string(state.Sort)),
		zap.Int("visible", state.VisibleCount))
	return engine.ComputeResults(catalog.Products, catalog.Categories, state), nil
}

func printTree(nodes []*types.Category, depth int) {
	for _, node := range nodes {
		fmt.Printf("%s%s (%s, %s)\n", strings.Repeat("  ", depth), node.Name, node.Id, node.Slug)
		printTree(node.Children, depth+1)
	}
}

func printJson(data any, log *zap.Logger) {
	b, err := sonic.ConfigDefault.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode result", zap.Error(err))
	}
	fmt.Println(string(b))
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: explorer [flags] <command> [args]

Commands:
  tree             Print the category tree
  query [params]   Run one result computation for a url query string,
                   e.g. "cat=phones&brand=apple&max=900&sort=price-asc"
  brands           List the brands the resolver recognizes

Flags:
`)
	flag.PrintDefaults()
}
