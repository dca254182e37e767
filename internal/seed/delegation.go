package seed

import "liaison-portal/internal/models"

// Schools returns the schools on the delegation circuit.
func Schools() []models.School {
	return []models.School{
		{ID: "s1", Name: "Nairobi High School", County: "Nairobi", Contact: "head@nairobihs.sch", Visits: 3},
		{ID: "s2", Name: "Kisumu Girls' Academy", County: "Kisumu", Contact: "principal@kgacademy.sch", Visits: 2},
		{ID: "s3", Name: "Mombasa Technical Institute", County: "Mombasa", Contact: "admin@mti.ac.ke", Visits: 4},
		{ID: "s4", Name: "Eldoret Preparatory", County: "Uasin Gishu", Contact: "info@eldoretprep.sch", Visits: 1},
		{ID: "s5", Name: "Nyeri County Secondary", County: "Nyeri", Contact: "office@nyeri-sec.sch", Visits: 2},
	}
}

// Attachees returns the attachment students.
func Attachees() []models.Person {
	return []models.Person{
		{ID: "a1", Name: "Grace Wanjiru", Department: "Policy & Research", Expiry: "2025-12-20", School: "Nairobi High School"},
		{ID: "a2", Name: "John Mwangi", Department: "Communications", Expiry: "2025-11-30", School: "Kisumu Girls' Academy"},
		{ID: "a3", Name: "Mary Atieno", Department: "Finance", Expiry: "2026-01-15", School: "Mombasa Technical Institute"},
		{ID: "a4", Name: "Samuel Kariuki", Department: "Monitoring & Evaluation", Expiry: "2025-10-31", School: "Eldoret Preparatory"},
		{ID: "a5", Name: "Fatima Noor", Department: "Legal", Expiry: "2026-02-28", School: "Nyeri County Secondary"},
		{ID: "a6", Name: "Peter Otieno", Department: "IT & Data", Expiry: "2025-12-05", School: "Nairobi High School"},
	}
}

// Interns returns the interns.
func Interns() []models.Person {
	return []models.Person{
		{ID: "i1", Name: "Alice Njeri", Department: "Communications", Expiry: "2025-11-15", School: "Nairobi High School"},
		{ID: "i2", Name: "Brian Ouma", Department: "Logistics", Expiry: "2025-12-01", School: "Kisumu Girls' Academy"},
		{ID: "i3", Name: "Catherine B.", Department: "Research", Expiry: "2026-03-10", School: "Mombasa Technical Institute"},
		{ID: "i4", Name: "David Kimani", Department: "Admin", Expiry: "2025-10-25", School: "Eldoret Preparatory"},
		{ID: "i5", Name: "Evelyn W.", Department: "Finance", Expiry: "2026-01-05", School: "Nyeri County Secondary"},
		{ID: "i6", Name: "Frankline S.", Department: "IT", Expiry: "2026-02-20", School: "Nairobi High School"},
	}
}

// CommunityGroups returns the local organisations.
func CommunityGroups() []models.CommunityGroup {
	return []models.CommunityGroup{
		{ID: "g1", Name: "County Youth Coalition", Leader: "Ms. A. Karanja", Contact: "youth@coalition.org", Purpose: "Youth empowerment and civic engagement"},
		{ID: "g2", Name: "Farmers' Cooperative Network", Leader: "Mr. J. Odhiambo", Contact: "contact@fcnet.org", Purpose: "Agriculture best practices and policy briefs"},
		{ID: "g3", Name: "Women in Devolution", Leader: "Ms. Z. Kamau", Contact: "women@devolution.org", Purpose: "Gender lens in county governance"},
		{ID: "g4", Name: "County Health Alliance", Leader: "Dr. M. Ouma", Contact: "health@alliance.org", Purpose: "Public health advocacy and review"},
		{ID: "g5", Name: "Local Business Association", Leader: "Mr. P. Njoroge", Contact: "business@lba.org", Purpose: "SME engagement and local economy"},
	}
}

// Volunteers returns the event volunteers.
func Volunteers() []models.Volunteer {
	return []models.Volunteer{
		{ID: "v1", Name: "Angela M.", Role: "Event Support", Phone: "+254700000001", Assigned: "Nairobi High School"},
		{ID: "v2", Name: "Brian K.", Role: "Logistics", Phone: "+254700000002", Assigned: "Kisumu Girls' Academy"},
		{ID: "v3", Name: "Cynthia R.", Role: "Registration", Phone: "+254700000003", Assigned: "Mombasa Technical Institute"},
		{ID: "v4", Name: "Dennis N.", Role: "Security Liaison", Phone: "+254700000004", Assigned: "Eldoret Preparatory"},
		{ID: "v5", Name: "Esther W.", Role: "Media", Phone: "+254700000005", Assigned: "Nyeri County Secondary"},
		{ID: "v6", Name: "Francis O.", Role: "Transport", Phone: "+254700000006", Assigned: "Nairobi High School"},
	}
}
