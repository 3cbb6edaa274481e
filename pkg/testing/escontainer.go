package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/pkg/config/env"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultESImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"
	esHTTPPort     = "9200/tcp"
)

type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

// Addresses is the address list an elasticsearch client config expects.
func (c *ESContainer) Addresses() []string {
	return []string{c.Address}
}

// NewESContainer starts a single-node elasticsearch without security and
// terminates it when tb finishes. ES_TEST_IMAGE overrides the image.
func NewESContainer(ctx context.Context, tb testing.TB) *ESContainer {
	tb.Helper()

	c, err := elasticsearch.Run(ctx,
		env.String("ES_TEST_IMAGE", defaultESImage),
		elasticsearch.WithPassword(""),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/").
				WithPort(esHTTPPort).
				WithStartupTimeout(90*time.Second),
		),
	)
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container: %v", err)
	}
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(c); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	endpoint, err := c.PortEndpoint(ctx, esHTTPPort, "http")
	if err != nil {
		tb.Fatalf("failed to resolve elasticsearch endpoint: %v", err)
	}

	return &ESContainer{
		Container: c,
		Address:   endpoint,
	}
}

func (c *ESContainer) String() string {
	return fmt.Sprintf("elasticsearch(%s)", c.Address)
}
