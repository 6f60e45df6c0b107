package database

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"recipe-site-backend/internal/store"
)

const objectColumns = "id::text, type, slug, title, metadata, created_at, modified_at"

// metadataField restricts filter keys that are spliced into SQL.
var metadataField = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// buildFindQuery translates a store.Query into a parameterised SELECT.
// Metadata filters match plain values, select-dropdown keys, expanded
// reference ids and list membership, mirroring store.Matches.
func buildFindQuery(q store.Query) (string, []interface{}, error) {
	var (
		conds []string
		args  []interface{}
	)
	bind := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Type != "" {
		conds = append(conds, "type = "+bind(q.Type))
	}

	keys := make([]string, 0, len(q.Filter))
	for k := range q.Filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		want := store.Stringify(q.Filter[key])
		switch key {
		case "id":
			conds = append(conds, "id::text = "+bind(want))
		case "slug", "title", "type":
			conds = append(conds, key+" = "+bind(want))
		default:
			if !strings.HasPrefix(key, store.MetadataKeyPrefix) {
				return "", nil, fmt.Errorf("unsupported filter key %q", key)
			}
			field := strings.TrimPrefix(key, store.MetadataKeyPrefix)
			if !metadataField.MatchString(field) {
				return "", nil, fmt.Errorf("invalid metadata field %q", field)
			}
			p := bind(want)
			conds = append(conds, fmt.Sprintf(
				"(metadata->>'%[1]s' = %[2]s"+
					" OR metadata->'%[1]s'->>'key' = %[2]s"+
					" OR metadata->'%[1]s'->>'id' = %[2]s"+
					" OR metadata->'%[1]s' @> jsonb_build_array(%[2]s::text)"+
					" OR metadata->'%[1]s' @> jsonb_build_array(jsonb_build_object('id', %[2]s::text)))",
				field, p,
			))
		}
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(objectColumns)
	sb.WriteString(" FROM content_objects")
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy(q.Sort))
	sb.WriteString(fmt.Sprintf(" LIMIT %d", q.EffectiveLimit()))

	return sb.String(), args, nil
}

func orderBy(order string) string {
	if order == store.SortCreatedAtDesc {
		return "created_at DESC, id DESC"
	}
	return "created_at ASC, id ASC"
}
