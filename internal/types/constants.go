package types

const ContextUserIDKey = "userID"
