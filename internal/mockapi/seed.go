package mockapi

// SeedData is the development fixture set. Ids are fixed so the SDK
// examples and integration tests can reference them.
func SeedData() map[string][]Record {
	return map[string][]Record{
		"persons": {
			{"id": int64(1), "name": "Luis", "lastName": "Paredes", "email": "luis.paredes@propgms.dev", "phone": "+51 999 111 222", "profession": "Civil Engineer", "professionalId": "123456", "professionalIdType": "CIP"},
			{"id": int64(2), "name": "Carla", "lastName": "Mendoza", "email": "carla.mendoza@propgms.dev", "phone": "+51 999 333 444", "profession": "Architect", "professionalId": "12345", "professionalIdType": "CAP"},
		},
		"accounts": {
			{"id": int64(1), "email": "luis.paredes@propgms.dev", "password": "secret123", "userType": "ORGANIZATION", "personId": int64(1), "createdAt": "2025-01-10T09:00:00Z"},
			{"id": int64(2), "email": "carla.mendoza@propgms.dev", "password": "secret123", "userType": "CLIENT", "personId": int64(2), "createdAt": "2025-02-14T15:30:00Z"},
		},
		"organizations": {
			{"id": int64(1), "legalName": "Constructora Andina S.A.C.", "commercialName": "Andina", "ruc": "20123456789", "createdBy": int64(1), "createdAt": "2025-01-12T10:00:00Z", "status": "ACTIVE"},
		},
		"members": {
			{"id": int64(1), "organizationId": int64(1), "personId": int64(1), "type": "CONTRACTOR", "joinedAt": "2025-01-12T10:00:00Z"},
		},
		"invitations": {
			{"id": int64(1), "organizationId": int64(1), "personId": int64(2), "invitedBy": int64(1), "status": "PENDING", "invitedAt": "2025-03-01T12:00:00Z"},
		},
		"projects": {
			{"id": int64(1), "name": "Residencial Los Olivos", "description": "Five floor residential building", "status": "DESIGN_IN_PROCESS", "budget": map[string]any{"amount": "250000", "currency": "PEN"}, "startingDate": "2025-03-15T00:00:00Z", "organizationId": int64(1), "contractorId": int64(1)},
		},
		"milestones": {
			{"id": int64(1), "name": "Structural design", "startDate": "2025-04-01T00:00:00Z", "endDate": "2025-05-15T00:00:00Z", "projectId": int64(1)},
		},
		"tasks": {
			{"id": int64(1), "name": "Column load review", "specialty": "STRUCTURAL", "status": "IN_PROGRESS", "startingDate": "2025-04-02T00:00:00Z", "dueDate": "2025-04-20T00:00:00Z", "responsible": int64(1), "milestoneId": int64(1), "budget": map[string]any{"amount": "15000", "currency": "PEN"}},
		},
		"changeProcesses": {
			{"id": int64(1), "projectId": int64(1), "justification": "Client requested an extra parking level", "status": "PENDING", "requestedBy": int64(1), "createdAt": "2025-05-02T09:00:00Z"},
		},
		"plans": {
			{"id": int64(1), "name": "Free", "description": "Trial tier", "durationInDays": 0, "price": map[string]any{"amount": "0", "currency": "PEN"}, "features": []any{"1 project"}, "planType": "FREE", "maxMembers": 3, "maxStorageSizeInBytes": int64(1073741824), "maxProjects": 1},
			{"id": int64(2), "name": "Studio", "description": "Paid tier for small firms", "durationInDays": 30, "price": map[string]any{"amount": "99.90", "currency": "PEN"}, "features": []any{"10 projects", "priority support"}, "planType": "PAID", "maxMembers": 25, "maxStorageSizeInBytes": int64(53687091200), "maxProjects": 10},
		},
		"subscriptions": {
			{"id": int64(1), "startDate": "2025-01-12T00:00:00Z", "endDate": "2026-01-12T00:00:00Z", "status": "ACTIVE", "personId": int64(1), "subscriptionPlan": int64(2), "isAutoRenew": true},
		},
		"workspaces": {
			{"id": int64(1), "organizationId": int64(1), "createdBy": int64(1), "createdAt": "2025-01-12T10:05:00Z", "subscriptionId": int64(1), "maxMembers": 25, "maxStorageSizeInBytes": int64(53687091200), "maxProjects": 10},
		},
	}
}
