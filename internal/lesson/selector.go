package lesson

import "github.com/alexanderramin/parley/internal/domain"

// PickModality draws the exercise type for a newly entered item. A draw
// below shadowingProbability selects shadowing.
func PickModality(rng Rand, shadowingProbability float64) domain.Modality {
	if rng.Float64() < shadowingProbability {
		return domain.ModalityShadowing
	}
	return domain.ModalityQuiz
}
