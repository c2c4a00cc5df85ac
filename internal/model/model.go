package model

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Resume{},
		&Personal{},
		&Specialization{},
		&Experience{},
		&Job{},
		&Education{},
		&School{},
		&Contact{},
	}
}
