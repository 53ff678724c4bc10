package scanner

import (
	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/lang"
	"github.com/trueflow-dev/trueflow/internal/splitter"
)

func splitFileBlocks(path string, l lang.Language, source []byte) []block.Block {
	return splitter.SplitFile(path, l, source)
}

func subBlocksOf(b block.Block, l lang.Language) []block.Block {
	return splitter.SplitBlock(b, l)
}
