package memory

import (
	"context"
)

type AdminRepository struct{}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

// FetchDbConfigs keeps the current in-process configs, there is no configs document to read.
func (m *AdminRepository) FetchDbConfigs(_ context.Context) error {
	return nil
}
