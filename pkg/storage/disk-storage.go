package storage

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/matst80/slask-storefront/pkg/types"
	"go.uber.org/zap"
)

// LoadCatalog reads categories.json and products.json from the root folder,
// or their .gz variants. Records failing validation are skipped and logged;
// duplicate ids keep the first occurrence.
func (d *DiskStorage) LoadCatalog() (*Catalog, error) {
	var rawCategories []categoryRecord
	if err := d.LoadAnyJson(&rawCategories, categoriesFile); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	var rawProducts []productRecord
	if err := d.LoadAnyJson(&rawProducts, productsFile); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	catalog := &Catalog{
		Categories: make([]types.Category, 0, len(rawCategories)),
		Products:   make([]types.Product, 0, len(rawProducts)),
	}
	seen := types.IdSet{}
	for i := range rawCategories {
		c, err := rawCategories[i].toCategory()
		if err == nil && seen.Contains(c.Id) {
			err = fmt.Errorf("%w: duplicate category id %q", ErrInvalidRecord, c.Id)
		}
		if err != nil {
			d.log.Warn("skipping category", zap.Int("index", i), zap.Error(err))
			catalog.Skipped++
			continue
		}
		seen.Add(c.Id)
		catalog.Categories = append(catalog.Categories, c)
	}
	seen = types.IdSet{}
	for i := range rawProducts {
		p, err := rawProducts[i].toProduct()
		if err == nil && seen.Contains(p.Id) {
			err = fmt.Errorf("%w: duplicate product id %q", ErrInvalidRecord, p.Id)
		}
		if err != nil {
			d.log.Warn("skipping product", zap.Int("index", i), zap.Error(err))
			catalog.Skipped++
			continue
		}
		seen.Add(p.Id)
		catalog.Products = append(catalog.Products, p)
	}
	d.log.Info("catalog loaded",
		zap.String("folder", d.RootFolder),
		zap.Int("categories", len(catalog.Categories)),
		zap.Int("products", len(catalog.Products)),
		zap.Int("skipped", catalog.Skipped))
	return catalog, nil
}

// LoadAnyJson loads name, falling back to name.gz when the plain file is
// missing.
func (d *DiskStorage) LoadAnyJson(data any, name string) error {
	fileName, _ := d.GetFileName(name)
	if _, err := os.Stat(fileName); err == nil {
		return d.LoadJson(data, name)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return d.LoadGzippedJson(data, name+".gz")
}

func (d *DiskStorage) LoadJson(data any, name string) error {
	fileName, _ := d.GetFileName(name)
	b, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	return decode(b, data)
}

func (d *DiskStorage) LoadGzippedJson(data any, name string) error {
	fileName, _ := d.GetFileName(name)
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	zipReader, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer zipReader.Close()

	b, err := io.ReadAll(zipReader)
	if err != nil {
		return err
	}
	return decode(b, data)
}

func decode(b []byte, data any) error {
	if strings.TrimSpace(string(b)) == "" {
		return nil
	}
	return sonic.Unmarshal(b, data)
}

// SaveJson writes data atomically through a temporary file, gzipped when the
// name ends in .gz.
func (d *DiskStorage) SaveJson(data any, name string) error {
	fileName, tmpFileName := d.GetFileName(name)
	b, err := sonic.Marshal(data)
	if err != nil {
		return err
	}

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}
	var w io.Writer = file
	var zipWriter *gzip.Writer
	if strings.HasSuffix(name, ".gz") {
		zipWriter = gzip.NewWriter(file)
		w = zipWriter
	}
	_, err = w.Write(b)
	if zipWriter != nil {
		if cerr := zipWriter.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmpFileName)
		return err
	}
	return os.Rename(tmpFileName, fileName)
}

// SaveCatalog writes the catalog in the layout LoadCatalog reads.
func (d *DiskStorage) SaveCatalog(catalog *Catalog, gzipped bool) error {
	suffix := ""
	if gzipped {
		suffix = ".gz"
	}
	if err := d.SaveJson(catalog.Categories, categoriesFile+suffix); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	if err := d.SaveJson(catalog.Products, productsFile+suffix); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	return nil
}
