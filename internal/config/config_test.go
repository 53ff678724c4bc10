package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trueflow-dev/trueflow/internal/config"
)

func TestMerge_LaterConfigOverridesEarlierFieldByField(t *testing.T) {
	base := config.Config{
		Ledger:   config.LedgerConfig{Path: "/base/reviews.jsonl"},
		Reviewer: config.ReviewerConfig{DefaultIdentity: "base-reviewer"},
		Scan:     config.ScanConfig{ExcludeKinds: []string{"Gap"}, Concurrency: 2},
	}
	overlay := config.Config{
		Ledger: config.LedgerConfig{Path: "/overlay/reviews.jsonl"},
	}

	merged := config.Merge(base, overlay)

	assert.Equal(t, "/overlay/reviews.jsonl", merged.Ledger.Path)
	assert.Equal(t, "base-reviewer", merged.Reviewer.DefaultIdentity)
	assert.Equal(t, []string{"Gap"}, merged.Scan.ExcludeKinds)
	assert.Equal(t, 2, merged.Scan.Concurrency)
}

func TestMerge_EmptyOverlayFieldsDoNotClobberBase(t *testing.T) {
	base := config.Config{
		Reviewer: config.ReviewerConfig{DefaultIdentity: "alice"},
		Scan:     config.ScanConfig{Concurrency: 8},
	}
	overlay := config.Config{}

	merged := config.Merge(base, overlay)

	assert.Equal(t, "alice", merged.Reviewer.DefaultIdentity)
	assert.Equal(t, 8, merged.Scan.Concurrency)
}

func TestMerge_LoggingIsReplacedAsAWholeWhenEitherFieldIsSet(t *testing.T) {
	base := config.Config{
		Observability: config.ObservabilityConfig{
			Logging: config.LoggingConfig{Level: "debug", Format: "json"},
		},
	}
	overlay := config.Config{
		Observability: config.ObservabilityConfig{
			Logging: config.LoggingConfig{Level: "error"},
		},
	}

	merged := config.Merge(base, overlay)

	assert.Equal(t, "error", merged.Observability.Logging.Level)
	assert.Empty(t, merged.Observability.Logging.Format)
}

func TestMerge_NoConfigsReturnsZeroValue(t *testing.T) {
	assert.Equal(t, config.Config{}, config.Merge())
}

func TestMerge_ThreadsThroughMultipleOverlaysInOrder(t *testing.T) {
	first := config.Config{Reviewer: config.ReviewerConfig{DefaultIdentity: "first"}}
	second := config.Config{Reviewer: config.ReviewerConfig{DefaultIdentity: "second"}}
	third := config.Config{Scan: config.ScanConfig{Concurrency: 16}}

	merged := config.Merge(first, second, third)

	assert.Equal(t, "second", merged.Reviewer.DefaultIdentity)
	assert.Equal(t, 16, merged.Scan.Concurrency)
}
