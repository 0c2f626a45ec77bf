package sheets

import "hompy/domain"

func comment(username, message, age, location string) domain.Comment {
	return domain.Comment{
		Username: username,
		Message:  message,
		Age:      age,
		Location: location,
	}
}
