package memory

// Delete removes a user so tests can hold tokens whose subject is gone.
func (r *UsersRepo) Delete(id int64) {
	r.mu.Lock()
	delete(r.items, id)
	r.mu.Unlock()
}
