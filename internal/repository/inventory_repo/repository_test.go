package inventory_repo

import (
	"testing"
)

func TestTakeItemQuery(t *testing.T) {
	tests := []struct {
		name     string
		itemID   int64
		itemName string
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "by id",
			itemID:   9,
			wantSQL:  "DELETE FROM inventory WHERE id = (SELECT id FROM inventory WHERE user_id = $1 AND id = $2 ORDER BY created_at, id LIMIT 1 FOR UPDATE) RETURNING id, user_id, item_name, item_value, created_at",
			wantArgs: []any{int64(7), int64(9)},
		},
		{
			name:     "oldest by name",
			itemName: "Торт",
			wantSQL:  "DELETE FROM inventory WHERE id = (SELECT id FROM inventory WHERE user_id = $1 AND item_name = $2 ORDER BY created_at, id LIMIT 1 FOR UPDATE) RETURNING id, user_id, item_name, item_value, created_at",
			wantArgs: []any{int64(7), "Торт"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlStr, args, err := takeItemQuery(7, tt.itemID, tt.itemName)
			if err != nil {
				t.Fatal(err)
			}
			if sqlStr != tt.wantSQL {
				t.Fatalf("unexpected sql:\n got %s\nwant %s", sqlStr, tt.wantSQL)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("unexpected args %v", args)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Fatalf("arg %d: got %v want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}
