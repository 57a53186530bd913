package checklist

// template is the static KYC checklist every store starts from. It is never
// handed out directly; callers get deep copies through Template.
var template = []Item{
	{ID: "full_name", Name: "Full Name", Description: "Customer's full legal name", Required: true, Status: StatusPending},
	{ID: "dob", Name: "Date of Birth", Description: "Customer's date of birth", Required: true, Status: StatusPending},
	{ID: "address", Name: "Residential Address", Description: "Customer's current residential address", Required: true, Status: StatusPending},
	{ID: "id_number", Name: "ID Number", Description: "Government-issued identification number", Required: true, Status: StatusPending},
	{ID: "nationality", Name: "Nationality", Description: "Customer's nationality", Required: true, Status: StatusPending},
	{ID: "phone", Name: "Phone Number", Description: "Customer's contact phone number", Required: true, Status: StatusPending},
	{ID: "email", Name: "Email Address", Description: "Customer's email address", Required: true, Status: StatusPending},
	{ID: "occupation", Name: "Occupation", Description: "Customer's current occupation", Required: false, Status: StatusPending},
	{ID: "company_name", Name: "Company Name", Description: "Name of the company (for business KYC)", Required: false, Status: StatusPending},
	{ID: "registration_number", Name: "Company Registration Number", Description: "Official company registration number", Required: false, Status: StatusPending},
	{ID: "directors", Name: "Company Directors", Description: "List of company directors", Required: false, Status: StatusPending},
	{ID: "shareholders", Name: "Company Shareholders", Description: "List of company shareholders", Required: false, Status: StatusPending},
}

// Template returns a fresh deep copy of the static checklist.
func Template() []Item {
	return Clone(template)
}
