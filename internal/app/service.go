package app

import (
	"time"

	"github.com/tim-tx/cello-utils/internal/adapters"
	"github.com/tim-tx/cello-utils/internal/ports"
)

type Service struct {
	Tables    ports.TableSourcePort
	Texts     ports.TextSourcePort
	Plasmids  ports.PlasmidSourcePort
	Manifests ports.ManifestPort
	Writer    ports.DocumentWriterPort
	Reader    ports.DocumentReaderPort
	Querier   ports.DocumentQueryPort
	Catalog   ports.CatalogPort
	Metrics   func(textfile string) ports.MetricsPort
	Clock     func() time.Time
}

func NewService() Service {
	text := adapters.NewTextFileAdapter()
	return Service{
		Tables:    adapters.NewCSVTableAdapter(),
		Texts:     text,
		Plasmids:  adapters.NewPlasmidFileAdapter(text),
		Manifests: adapters.NewManifestFileAdapter(),
		Writer:    adapters.NewDocumentFileAdapter(),
		Reader:    adapters.NewDocumentReaderAdapter(),
		Querier:   adapters.NewJSONPathQueryAdapter(),
		Catalog:   adapters.NewSQLiteCatalogAdapter(),
		Metrics:   adapters.NewMetricsAdapter,
		Clock:     time.Now,
	}
}
