package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// DefaultNodeID is used when NextID runs before Init.
const DefaultNodeID int64 = 1

var (
	mu   sync.Mutex
	node *snowflake.Node
)

// Init sets the generator node. Node ids range from 0 to 1023.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns a new sync run identifier.
func NextID() int64 {
	mu.Lock()
	defer mu.Unlock()
	if node == nil {
		n, err := snowflake.NewNode(DefaultNodeID)
		if err != nil {
			panic(err)
		}
		node = n
	}
	return node.Generate().Int64()
}
