package handler

// SetMaxImportBytes меняет лимит тела импорта в тестах
func (h *TransferHandler) SetMaxImportBytes(n int64) {
	h.maxBytes = n
}
