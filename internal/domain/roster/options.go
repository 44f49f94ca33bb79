package roster

// FilterOptions lists the dropdown choices the shell offers.
type FilterOptions struct {
	Roles    []string `json:"roles"`
	Types    []string `json:"types"`
	SortKeys []string `json:"sortKeys"`
}

// Options builds dropdown choices: the "All" sentinel, then the known values,
// then any other non-empty values found in records in first-seen order.
func Options(records []Record) FilterOptions {
	roles := []string{AllRoles, RolePlayer, RoleCoach, RoleStaff}
	types := []string{AllTypes, TypeOffense, TypeDefense}

	seenRoles := toSet(roles)
	seenTypes := toSet(types)
	for _, r := range records {
		if r.Role != "" && !seenRoles[r.Role] {
			seenRoles[r.Role] = true
			roles = append(roles, r.Role)
		}
		if r.Type != "" && r.Type != NotAvailable && !seenTypes[r.Type] {
			seenTypes[r.Type] = true
			types = append(types, r.Type)
		}
	}

	keys := SortKeys()
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, k.String())
	}

	return FilterOptions{Roles: roles, Types: types, SortKeys: labels}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
