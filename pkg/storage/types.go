package storage

import (
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/matst80/slask-storefront/pkg/types"
	"go.uber.org/zap"
)

var ErrInvalidRecord = errors.New("invalid catalog record")

const categoriesFile = "categories.json"
const productsFile = "products.json"

// Catalog is the externally owned data the discovery engine reads.
type Catalog struct {
	Categories []types.Category
	Products   []types.Product
	// Skipped counts records rejected at ingestion.
	Skipped int
}

type DiskStorage struct {
	RootFolder string
	log        *zap.Logger
}

func NewDiskStorage(rootFolder string, log *zap.Logger) *DiskStorage {
	if log == nil {
		log = zap.NewNop()
	}
	return &DiskStorage{
		RootFolder: rootFolder,
		log:        log,
	}
}

func (ds *DiskStorage) GetFileName(name string) (string, string) {
	fileName := path.Join(ds.RootFolder, name)
	tmpFileName := fileName + ".tmp-" + fmt.Sprintf("%d", time.Now().UnixMilli())
	return fileName, tmpFileName
}
