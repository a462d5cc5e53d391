package domain

// KeyPrefix namespaces every docdex key in the shared key-value store.
const KeyPrefix = "docdex:"
