package service

import "time"

// SetClockForTest replaces the clock of an admission or status service.
func SetClockForTest(s any, now func() time.Time) {
	switch svc := s.(type) {
	case *admissionService:
		svc.now = now
	case *statusService:
		svc.now = now
	default:
		panic("SetClockForTest: unsupported service")
	}
}

// RuleOrder lists the rejection reasons in evaluation order.
func RuleOrder() []Reason {
	reasons := make([]Reason, 0, len(admissionRules))
	for _, r := range admissionRules {
		reasons = append(reasons, r.reason)
	}
	return reasons
}
