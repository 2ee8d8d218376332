/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package cosmosrepository

import (
	"fmt"

	"github.com/rclarkdev/CosmosRepository/store"
)

// typeParameter is the reserved placeholder bound to the discriminator value.
const typeParameter = "@__type"

// typeClause matches documents whose discriminator equals the target type.
// Documents with no discriminator at all also match: containers predate the
// type convention and those legacy documents must stay readable.
const typeClause = `(NOT IS_DEFINED(c["type"]) OR c["type"] = ` + typeParameter + `)`

// composeFilter conjoins the caller's optional query with the discriminator
// clause for typeName. The caller's query is never mutated; parameters are
// copied into the returned query.
func composeFilter(typeName string, q *store.Query) store.Query {
	if q == nil || q.Filter == "" {
		return store.Query{
			Filter:     typeClause,
			Parameters: []store.QueryParameter{{Name: typeParameter, Value: typeName}},
		}
	}

	params := make([]store.QueryParameter, 0, len(q.Parameters)+1)
	params = append(params, q.Parameters...)
	params = append(params, store.QueryParameter{Name: typeParameter, Value: typeName})

	return store.Query{
		Filter:     fmt.Sprintf("(%s) AND %s", q.Filter, typeClause),
		Parameters: params,
	}
}
