package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDuplicateIDs(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		doc      string
		wantKind IDKind
		wantID   string
	}{
		"all unique passes": {
			doc: `{
				"rules": [{"id": "r1", "actions": []}, {"id": "r2", "actions": []}],
				"chassis": [
					{"number": 1, "devices": [{"id": "d1", "rails": [{"id": "v1"}]}]},
					{"number": 2, "devices": [{"id": "d2", "rails": [{"id": "v2"}]}]}
				]
			}`,
		},
		"duplicate rule ID": {
			doc:      `{"rules": [{"id": "r1", "actions": []}, {"id": "r1", "actions": []}]}`,
			wantKind: KindRule,
			wantID:   "r1",
		},
		"duplicate chassis number": {
			doc:      `{"chassis": [{"number": 1}, {"number": 1}]}`,
			wantKind: KindChassis,
			wantID:   "1",
		},
		"device ID unique per chassis but duplicated across chassis": {
			doc: `{"chassis": [
				{"number": 1, "devices": [{"id": "d1"}]},
				{"number": 2, "devices": [{"id": "d1"}]}
			]}`,
			wantKind: KindDevice,
			wantID:   "d1",
		},
		"duplicate device ID within one chassis": {
			doc:      `{"chassis": [{"number": 1, "devices": [{"id": "d1"}, {"id": "d1"}]}]}`,
			wantKind: KindDevice,
			wantID:   "d1",
		},
		"rail ID duplicated across devices": {
			doc: `{"chassis": [{"number": 1, "devices": [
				{"id": "d1", "rails": [{"id": "vdd"}]},
				{"id": "d2", "rails": [{"id": "vdd"}]}
			]}]}`,
			wantKind: KindRail,
			wantID:   "vdd",
		},
		"rail shares ID with rule": {
			doc: `{
				"rules": [{"id": "vdd", "actions": []}],
				"chassis": [{"number": 1, "devices": [{"id": "d1", "rails": [{"id": "vdd"}]}]}]
			}`,
			wantKind: KindGlobal,
			wantID:   "vdd",
		},
		"device shares ID with rule": {
			doc: `{
				"rules": [{"id": "shared", "actions": []}],
				"chassis": [{"number": 1, "devices": [{"id": "shared"}]}]
			}`,
			wantKind: KindGlobal,
			wantID:   "shared",
		},
		"same chassis number namespace does not collide with IDs": {
			doc: `{
				"rules": [{"id": "1", "actions": []}],
				"chassis": [{"number": 1}]
			}`,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := checkDuplicateIDs(mustParse(t, tt.doc))

			if tt.wantKind == "" {
				require.NoError(t, err)
				return
			}
			var dup *DuplicateIDError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, tt.wantKind, dup.Kind)
			assert.Equal(t, tt.wantID, dup.ID)
		})
	}
}

func TestIdentifierWalks(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{
		"rules": [{"id": "r1", "actions": []}, {"id": "r2", "actions": []}],
		"chassis": [
			{"number": 1, "devices": [
				{"id": "d1", "rails": [{"id": "v1"}, {"id": "v2"}]},
				{"id": "d2"}
			]},
			{"number": 2, "devices": [{"id": "d3", "rails": [{"id": "v3"}]}]}
		]
	}`)

	assert.Equal(t, []string{"r1", "r2"}, ruleIDs(doc))
	assert.Equal(t, []string{"1", "2"}, chassisNumbers(doc))
	assert.Equal(t, []string{"d1", "d2", "d3"}, deviceIDs(doc))
	assert.Equal(t, []string{"v1", "v2", "v3"}, railIDs(doc))
}
