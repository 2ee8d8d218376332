/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package cosmosrepository

// Option configures a Repository.
type Option func(*settings)

type settings struct {
	logger Logger
}

// WithLogger sets the failure logger. The default discards everything.
func WithLogger(l Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// ItemOption configures a single-item operation.
type ItemOption func(*itemOptions)

type itemOptions struct {
	partitionKey string
}

// WithPartitionKey sets an explicit partition key for a single-item
// operation. Without it the item's id is used, which is correct only for
// containers partitioned on /id; containers partitioned on another field
// must always pass this option.
func WithPartitionKey(partitionKey string) ItemOption {
	return func(o *itemOptions) {
		o.partitionKey = partitionKey
	}
}

// resolvePartitionKey applies the id-as-partition-key default once, at the
// operation entry point.
func resolvePartitionKey(id string, opts []ItemOption) string {
	var o itemOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.partitionKey == "" {
		return id
	}
	return o.partitionKey
}
