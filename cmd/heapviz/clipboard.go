package main

import (
	"github.com/atotto/clipboard"

	"github.com/lsw8075/malloc-lab/malloc"
)

// copyMetricsToClipboard yanks the current Metrics() snapshot to the
// system clipboard, mirroring hiveexplorer's yank-to-clipboard binding.
func copyMetricsToClipboard(m malloc.HeapMetrics) error {
	return clipboard.WriteAll(metricsText(m))
}
