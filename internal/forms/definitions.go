package forms

// The concrete form definitions. Field names match the HTML input names the
// templates render, and the constraints mirror the registration/inventory/
// medication rules: username 4-25, email 6-50, name 1-50, brand/category/
// medication name/frequency 4-50, description 4-200, dosage 1-20.

// Register is the account registration form.
func Register() Form {
	return Form{
		Fields: []Field{
			{Name: "name", Validate: []Validator{Length(1, 50)}},
			{Name: "username", Validate: []Validator{Length(4, 25)}},
			{Name: "email", Validate: []Validator{Length(6, 50)}},
			{Name: "password", Validate: []Validator{Required()}},
		},
		Checks: []CrossCheck{
			EqualTo("password", "confirm", "Passwords do not match"),
		},
	}
}

// Inventory is the add-batch form. The login form has no entry here; it
// carries no constraints of its own, authentication decides.
func Inventory() Form {
	return Form{
		Fields: []Field{
			{Name: "quantity", Validate: []Validator{Required(), Integer(0)}},
			{Name: "brand", Validate: []Validator{Length(4, 50)}},
			{Name: "category", Validate: []Validator{Length(4, 50)}},
			// The received-date input keeps its historical wire name.
			{Name: "medication_time", Validate: []Validator{Optional(Date())}},
		},
	}
}

// Medication is the add-medication form.
func Medication() Form {
	return Form{
		Fields: []Field{
			{Name: "medication_name", Validate: []Validator{Length(4, 50)}},
			{Name: "description", Validate: []Validator{Length(4, 200)}},
			{Name: "price", Validate: []Validator{Required(), Decimal()}},
			{Name: "inv_id", Validate: []Validator{Length(4, 50)}},
			{Name: "dosage", Validate: []Validator{Length(1, 20)}},
			{Name: "medication_time", Validate: []Validator{Optional(ClockTime())}},
			{Name: "frequency", Validate: []Validator{Length(4, 50)}},
		},
	}
}
