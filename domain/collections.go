package domain

const (
	CollectionUser = "users"
)
const (
	CollectionBook = "books"
)
const (
	CollectionBookRead = "books_read"
)
