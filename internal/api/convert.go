package api

import (
	"encoding/json"
	"log"

	"github.com/moodbite/backend/internal/model"
	"github.com/moodbite/backend/internal/types"
)

// recipesToJSONB converts enriched recipes into the generic JSON document
// shape the log and favorite collections store.
func recipesToJSONB(recipes []types.EnrichedRecipe) model.JSONBArray {
	data, err := json.Marshal(recipes)
	if err != nil {
		log.Printf("Failed to marshal recipes for storage: %v", err)
		return model.JSONBArray{}
	}

	var out model.JSONBArray
	if err := json.Unmarshal(data, &out); err != nil {
		log.Printf("Failed to convert recipes for storage: %v", err)
		return model.JSONBArray{}
	}
	return out
}
