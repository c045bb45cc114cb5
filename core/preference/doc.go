// Package preference stores small user preferences such as the selected
// language. Store is implemented here in memory and as a JSON file; Redis
// and PostgreSQL implementations live under integration/database.
package preference
