package qrscan

import (
	"carelink-service/internal/app/services/core/prescriptions"
	"carelink-service/internal/pkg/dto/responses"
)

// Demo codes exist purely so the app can be demonstrated without patient
// data. They never touch the store, never write an audit event, and
// VerifiedAccess stays false.
var demoCatalog = map[string][]responses.ScannedMedication{
	"diabetes": {
		{Name: "Metformin", Type: "Tablet", Dosage: "500mg", Frequency: "Twice Daily", Duration: "30 days", IllnessType: "Diabetes", Notes: "Take with food"},
		{Name: "Glimepiride", Type: "Tablet", Dosage: "2mg", Frequency: "Once Daily", Duration: "30 days", IllnessType: "Diabetes", Notes: "Take before breakfast"},
	},
	"hypertension": {
		{Name: "Amlodipine", Type: "Tablet", Dosage: "5mg", Frequency: "Once Daily", Duration: "30 days", IllnessType: "Hypertension"},
		{Name: "Losartan", Type: "Tablet", Dosage: "50mg", Frequency: "Once Daily", Duration: "30 days", IllnessType: "Hypertension", Notes: "Monitor blood pressure"},
	},
	"antibiotic": {
		{Name: "Amoxicillin", Type: "Capsule", Dosage: "500mg", Frequency: "Three Times Daily", Duration: "7 days", IllnessType: "Infection", Notes: "Complete the full course"},
	},
}

var demoDefault = []responses.ScannedMedication{
	{Name: "Paracetamol", Type: "Tablet", Dosage: "500mg", Frequency: "As Needed", Duration: "5 days", IllnessType: "General", Notes: "For fever or pain"},
}

// DemoMedications returns the fixed set for a category with the schedule
// derived the same way real medications get theirs.
func DemoMedications(category string) []responses.ScannedMedication {
	medications, ok := demoCatalog[category]
	if !ok {
		medications = demoDefault
	}

	out := make([]responses.ScannedMedication, len(medications))
	copy(out, medications)
	for i := range out {
		out[i].Times = prescriptions.LookupTimes(out[i].Frequency)
		out[i].VerifiedAccess = false
	}
	return out
}
