package registry

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
	"github.com/louisbranch/lorekeeper/internal/services/content/storage"
)

var defaultRegistry = mustBuiltin()

// Default returns the registry holding every built-in entity type.
func Default() *Registry {
	return defaultRegistry
}

func mustBuiltin() *Registry {
	r := New()
	for _, reg := range builtinRegistrations() {
		if err := r.Register(reg); err != nil {
			panic(err)
		}
	}
	return r
}

func decodeCandidate[T any](raw json.RawMessage) (T, error) {
	var candidate T
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return candidate, apperrors.Wrap(apperrors.CodeCandidateMalformed, "candidate payload is malformed", err)
	}
	return candidate, nil
}

func entityAs[T domain.Entity](entity domain.Entity) (T, error) {
	value, ok := entity.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("entity is %T, want %T", entity, zero)
	}
	return value, nil
}

func builtinRegistrations() []Registration {
	return []Registration{
		{
			Prefix:  domain.PrefixRule,
			Table:   "rules",
			Columns: []string{"name", "description", "mechanics"},
			Decode: func(raw json.RawMessage) (domain.Entity, error) {
				candidate, err := decodeCandidate[domain.Rule](raw)
				if err != nil {
					return nil, err
				}
				return domain.ValidateRule(candidate)
			},
			WithID: func(entity domain.Entity, id ident.ID) domain.Entity {
				rule := entity.(domain.Rule)
				rule.ObjID = id
				return rule
			},
			ToRecord: func(entity domain.Entity) (storage.Record, error) {
				rule, err := entityAs[domain.Rule](entity)
				if err != nil {
					return storage.Record{}, err
				}
				return storage.Record{
					Key: recordKey(rule.ObjID),
					Fields: map[string]any{
						"name":        rule.Name,
						"description": rule.Description,
						"mechanics":   rule.Mechanics,
					},
				}, nil
			},
			FromRecord: func(rec storage.Record) (domain.Entity, error) {
				rule := domain.Rule{ObjID: rec.Key.ID()}
				var err error
				if rule.Name, err = storage.StringField(rec, "name"); err != nil {
					return nil, err
				}
				if rule.Description, err = storage.StringField(rec, "description"); err != nil {
					return nil, err
				}
				if rule.Mechanics, err = storage.StringField(rec, "mechanics"); err != nil {
					return nil, err
				}
				return rule, nil
			},
		},
		{
			Prefix:  domain.PrefixObjective,
			Table:   "objectives",
			Columns: []string{"name", "description", "completed"},
			Decode: func(raw json.RawMessage) (domain.Entity, error) {
				candidate, err := decodeCandidate[domain.Objective](raw)
				if err != nil {
					return nil, err
				}
				return domain.ValidateObjective(candidate)
			},
			WithID: func(entity domain.Entity, id ident.ID) domain.Entity {
				objective := entity.(domain.Objective)
				objective.ObjID = id
				return objective
			},
			ToRecord: func(entity domain.Entity) (storage.Record, error) {
				objective, err := entityAs[domain.Objective](entity)
				if err != nil {
					return storage.Record{}, err
				}
				return storage.Record{
					Key: recordKey(objective.ObjID),
					Fields: map[string]any{
						"name":        objective.Name,
						"description": objective.Description,
						"completed":   objective.Completed,
					},
				}, nil
			},
			FromRecord: func(rec storage.Record) (domain.Entity, error) {
				objective := domain.Objective{ObjID: rec.Key.ID()}
				var err error
				if objective.Name, err = storage.StringField(rec, "name"); err != nil {
					return nil, err
				}
				if objective.Description, err = storage.StringField(rec, "description"); err != nil {
					return nil, err
				}
				if objective.Completed, err = storage.BoolField(rec, "completed"); err != nil {
					return nil, err
				}
				return objective, nil
			},
		},
		{
			Prefix:  domain.PrefixPoint,
			Table:   "points",
			Columns: []string{"title", "description", "objective_prefix", "objective_numeric"},
			Decode: func(raw json.RawMessage) (domain.Entity, error) {
				candidate, err := decodeCandidate[domain.Point](raw)
				if err != nil {
					return nil, err
				}
				return domain.ValidatePoint(candidate)
			},
			WithID: func(entity domain.Entity, id ident.ID) domain.Entity {
				point := entity.(domain.Point)
				point.ObjID = id
				return point
			},
			ToRecord: func(entity domain.Entity) (storage.Record, error) {
				point, err := entityAs[domain.Point](entity)
				if err != nil {
					return storage.Record{}, err
				}
				fields := map[string]any{
					"title":       point.Title,
					"description": point.Description,
				}
				storage.RefColumns(fields, "objective", point.Objective)
				return storage.Record{Key: recordKey(point.ObjID), Fields: fields}, nil
			},
			FromRecord: func(rec storage.Record) (domain.Entity, error) {
				point := domain.Point{ObjID: rec.Key.ID()}
				var err error
				if point.Title, err = storage.StringField(rec, "title"); err != nil {
					return nil, err
				}
				if point.Description, err = storage.StringField(rec, "description"); err != nil {
					return nil, err
				}
				if point.Objective, err = storage.RefField(rec, "objective"); err != nil {
					return nil, err
				}
				return point, nil
			},
		},
		{
			Prefix:  domain.PrefixSegment,
			Table:   "segments",
			Columns: []string{"title", "description"},
			RefSets: []RefSetSpec{{Name: "points", Table: "segment_points"}},
			Decode: func(raw json.RawMessage) (domain.Entity, error) {
				candidate, err := decodeCandidate[domain.Segment](raw)
				if err != nil {
					return nil, err
				}
				return domain.ValidateSegment(candidate)
			},
			WithID: func(entity domain.Entity, id ident.ID) domain.Entity {
				segment := entity.(domain.Segment)
				segment.ObjID = id
				return segment
			},
			ToRecord: func(entity domain.Entity) (storage.Record, error) {
				segment, err := entityAs[domain.Segment](entity)
				if err != nil {
					return storage.Record{}, err
				}
				return storage.Record{
					Key: recordKey(segment.ObjID),
					Fields: map[string]any{
						"title":       segment.Title,
						"description": segment.Description,
					},
					Refs: []storage.RefSet{{Name: "points", IDs: segment.Points}},
				}, nil
			},
			FromRecord: func(rec storage.Record) (domain.Entity, error) {
				segment := domain.Segment{ObjID: rec.Key.ID()}
				var err error
				if segment.Title, err = storage.StringField(rec, "title"); err != nil {
					return nil, err
				}
				if segment.Description, err = storage.StringField(rec, "description"); err != nil {
					return nil, err
				}
				segment.Points = rec.RefSetByName("points").IDs
				return segment, nil
			},
		},
		{
			Prefix:  domain.PrefixArc,
			Table:   "arcs",
			Columns: []string{"title", "description"},
			RefSets: []RefSetSpec{
				{Name: "segments", Table: "arc_segments"},
				{Name: "combatants", Table: "arc_combatants"},
			},
			Decode: func(raw json.RawMessage) (domain.Entity, error) {
				candidate, err := decodeCandidate[domain.Arc](raw)
				if err != nil {
					return nil, err
				}
				return domain.ValidateArc(candidate)
			},
			WithID: func(entity domain.Entity, id ident.ID) domain.Entity {
				arc := entity.(domain.Arc)
				arc.ObjID = id
				return arc
			},
			ToRecord: func(entity domain.Entity) (storage.Record, error) {
				arc, err := entityAs[domain.Arc](entity)
				if err != nil {
					return storage.Record{}, err
				}
				return storage.Record{
					Key: recordKey(arc.ObjID),
					Fields: map[string]any{
						"title":       arc.Title,
						"description": arc.Description,
					},
					Refs: []storage.RefSet{
						{Name: "segments", IDs: arc.Segments},
						{Name: "combatants", IDs: arc.Combatants},
					},
				}, nil
			},
			FromRecord: func(rec storage.Record) (domain.Entity, error) {
				arc := domain.Arc{ObjID: rec.Key.ID()}
				var err error
				if arc.Title, err = storage.StringField(rec, "title"); err != nil {
					return nil, err
				}
				if arc.Description, err = storage.StringField(rec, "description"); err != nil {
					return nil, err
				}
				arc.Segments = rec.RefSetByName("segments").IDs
				arc.Combatants = rec.RefSetByName("combatants").IDs
				return arc, nil
			},
		},
		{
			Prefix:  domain.PrefixItem,
			Table:   "items",
			Columns: []string{"name", "description", "rarity", "value"},
			Decode: func(raw json.RawMessage) (domain.Entity, error) {
				candidate, err := decodeCandidate[domain.Item](raw)
				if err != nil {
					return nil, err
				}
				return domain.ValidateItem(candidate)
			},
			WithID: func(entity domain.Entity, id ident.ID) domain.Entity {
				item := entity.(domain.Item)
				item.ObjID = id
				return item
			},
			ToRecord: func(entity domain.Entity) (storage.Record, error) {
				item, err := entityAs[domain.Item](entity)
				if err != nil {
					return storage.Record{}, err
				}
				return storage.Record{
					Key: recordKey(item.ObjID),
					Fields: map[string]any{
						"name":        item.Name,
						"description": item.Description,
						"rarity":      item.Rarity,
						"value":       item.Value,
					},
				}, nil
			},
			FromRecord: func(rec storage.Record) (domain.Entity, error) {
				item := domain.Item{ObjID: rec.Key.ID()}
				var err error
				if item.Name, err = storage.StringField(rec, "name"); err != nil {
					return nil, err
				}
				if item.Description, err = storage.StringField(rec, "description"); err != nil {
					return nil, err
				}
				if item.Rarity, err = storage.StringField(rec, "rarity"); err != nil {
					return nil, err
				}
				if item.Value, err = storage.IntField(rec, "value"); err != nil {
					return nil, err
				}
				return item, nil
			},
		},
		{
			Prefix:  domain.PrefixCharacter,
			Table:   "characters",
			Columns: []string{"name", "description", "role", "location_prefix", "location_numeric"},
			RefSets: []RefSetSpec{{Name: "inventory", Table: "character_inventory"}},
			Decode: func(raw json.RawMessage) (domain.Entity, error) {
				candidate, err := decodeCandidate[domain.Character](raw)
				if err != nil {
					return nil, err
				}
				return domain.ValidateCharacter(candidate)
			},
			WithID: func(entity domain.Entity, id ident.ID) domain.Entity {
				character := entity.(domain.Character)
				character.ObjID = id
				return character
			},
			ToRecord: func(entity domain.Entity) (storage.Record, error) {
				character, err := entityAs[domain.Character](entity)
				if err != nil {
					return storage.Record{}, err
				}
				fields := map[string]any{
					"name":        character.Name,
					"description": character.Description,
					"role":        string(character.Role),
				}
				storage.RefColumns(fields, "location", character.Location)
				return storage.Record{
					Key:    recordKey(character.ObjID),
					Fields: fields,
					Refs:   []storage.RefSet{{Name: "inventory", IDs: character.Inventory}},
				}, nil
			},
			FromRecord: func(rec storage.Record) (domain.Entity, error) {
				character := domain.Character{ObjID: rec.Key.ID()}
				var err error
				if character.Name, err = storage.StringField(rec, "name"); err != nil {
					return nil, err
				}
				if character.Description, err = storage.StringField(rec, "description"); err != nil {
					return nil, err
				}
				role, err := storage.StringField(rec, "role")
				if err != nil {
					return nil, err
				}
				character.Role = domain.Role(role)
				if character.Location, err = storage.RefField(rec, "location"); err != nil {
					return nil, err
				}
				character.Inventory = rec.RefSetByName("inventory").IDs
				return character, nil
			},
		},
		{
			Prefix:  domain.PrefixLocation,
			Table:   "locations",
			Columns: []string{"name", "description", "region"},
			RefSets: []RefSetSpec{{Name: "occupants", Table: "location_occupants"}},
			Decode: func(raw json.RawMessage) (domain.Entity, error) {
				candidate, err := decodeCandidate[domain.Location](raw)
				if err != nil {
					return nil, err
				}
				return domain.ValidateLocation(candidate)
			},
			WithID: func(entity domain.Entity, id ident.ID) domain.Entity {
				location := entity.(domain.Location)
				location.ObjID = id
				return location
			},
			ToRecord: func(entity domain.Entity) (storage.Record, error) {
				location, err := entityAs[domain.Location](entity)
				if err != nil {
					return storage.Record{}, err
				}
				return storage.Record{
					Key: recordKey(location.ObjID),
					Fields: map[string]any{
						"name":        location.Name,
						"description": location.Description,
						"region":      location.Region,
					},
					Refs: []storage.RefSet{{Name: "occupants", IDs: location.Occupants}},
				}, nil
			},
			FromRecord: func(rec storage.Record) (domain.Entity, error) {
				location := domain.Location{ObjID: rec.Key.ID()}
				var err error
				if location.Name, err = storage.StringField(rec, "name"); err != nil {
					return nil, err
				}
				if location.Description, err = storage.StringField(rec, "description"); err != nil {
					return nil, err
				}
				if location.Region, err = storage.StringField(rec, "region"); err != nil {
					return nil, err
				}
				location.Occupants = rec.RefSetByName("occupants").IDs
				return location, nil
			},
		},
		{
			Prefix:  domain.PrefixCampaignPlan,
			Table:   "campaign_plans",
			Columns: []string{"name", "description"},
			RefSets: []RefSetSpec{
				{Name: "arcs", Table: "plan_arcs"},
				{Name: "characters", Table: "plan_characters"},
				{Name: "locations", Table: "plan_locations"},
				{Name: "rules", Table: "plan_rules"},
			},
			Decode: func(raw json.RawMessage) (domain.Entity, error) {
				candidate, err := decodeCandidate[domain.CampaignPlan](raw)
				if err != nil {
					return nil, err
				}
				return domain.ValidateCampaignPlan(candidate)
			},
			WithID: func(entity domain.Entity, id ident.ID) domain.Entity {
				plan := entity.(domain.CampaignPlan)
				plan.ObjID = id
				return plan
			},
			ToRecord: func(entity domain.Entity) (storage.Record, error) {
				plan, err := entityAs[domain.CampaignPlan](entity)
				if err != nil {
					return storage.Record{}, err
				}
				return storage.Record{
					Key: recordKey(plan.ObjID),
					Fields: map[string]any{
						"name":        plan.Name,
						"description": plan.Description,
					},
					Refs: []storage.RefSet{
						{Name: "arcs", IDs: plan.Arcs},
						{Name: "characters", IDs: plan.Characters},
						{Name: "locations", IDs: plan.Locations},
						{Name: "rules", IDs: plan.Rules},
					},
				}, nil
			},
			FromRecord: func(rec storage.Record) (domain.Entity, error) {
				plan := domain.CampaignPlan{ObjID: rec.Key.ID()}
				var err error
				if plan.Name, err = storage.StringField(rec, "name"); err != nil {
					return nil, err
				}
				if plan.Description, err = storage.StringField(rec, "description"); err != nil {
					return nil, err
				}
				plan.Arcs = rec.RefSetByName("arcs").IDs
				plan.Characters = rec.RefSetByName("characters").IDs
				plan.Locations = rec.RefSetByName("locations").IDs
				plan.Rules = rec.RefSetByName("rules").IDs
				return plan, nil
			},
		},
	}
}

func recordKey(id ident.ID) storage.Key {
	return storage.Key{Prefix: id.Prefix, Numeric: id.Numeric}
}
