package services

// VariantPlan is the outcome of diffing a submitted variant list against
// what is persisted for a fabric: brand-new rows to insert, known rows to
// update in place, and persisted ids to delete because the submission no
// longer carries them.
type VariantPlan struct {
	ToInsert    []VariantSubmission
	ToUpdate    []VariantSubmission
	ToDeleteIDs []uint
}

// ReconcileVariants treats the submitted list as the complete desired
// variant set for the fabric: submissions without an id are inserts,
// submissions carrying a persisted id are updates, and every persisted
// id missing from the submission is deleted. An id outside the
// persisted set is stale or belongs to another fabric and never reaches
// the update path. Pure function, no database access.
func ReconcileVariants(persistedIDs []uint, submitted []VariantSubmission) VariantPlan {
	var plan VariantPlan

	persisted := make(map[uint]struct{}, len(persistedIDs))
	for _, id := range persistedIDs {
		persisted[id] = struct{}{}
	}

	kept := make(map[uint]struct{}, len(submitted))
	for _, variant := range submitted {
		if variant.ID == nil {
			plan.ToInsert = append(plan.ToInsert, variant)
			continue
		}
		if _, owned := persisted[*variant.ID]; !owned {
			continue
		}
		kept[*variant.ID] = struct{}{}
		plan.ToUpdate = append(plan.ToUpdate, variant)
	}

	for _, id := range persistedIDs {
		if _, ok := kept[id]; !ok {
			plan.ToDeleteIDs = append(plan.ToDeleteIDs, id)
		}
	}

	return plan
}
