package domain

const (
	Available   = 1  // остатка достаточно
	Unavailable = -1 // остатка не хватает
)

// InventoryGroup — запрос остатков одного магазина (одна группа на отгрузку).
type InventoryGroup struct {
	StoreID    string   `json:"storeId"`
	ProductIDs []string `json:"products"`
}

// InventoryRequest — пакетный запрос к сервису остатков магазинов.
type InventoryRequest struct {
	Stores []InventoryGroup `json:"stores"`
}

// Empty — в запросе нет ни одной группы.
func (r InventoryRequest) Empty() bool { return len(r.Stores) == 0 }

// InventoryEntry — остаток товара в магазине из ответа сервиса.
type InventoryEntry struct {
	Quantity     int `json:"quantity"`
	Availability int `json:"availability"`
}

// InventoryResponse — ответ сервиса остатков, ключ — InventoryKey(store, product).
type InventoryResponse map[string]InventoryEntry

// InventoryKey — составной ключ ответа: store id + product id без разделителя,
// в формате сервиса остатков. Ключи могут совпасть ("s1"+"23" и "s12"+"3"),
// если id магазинов являются префиксами друг друга.
func InventoryKey(storeID, productID string) string { return storeID + productID }

// InventoryRecord — сверенный остаток (store, product) в рамках одной проверки.
type InventoryRecord struct {
	Quantity     int `json:"quantity"`
	Requested    int `json:"requested"`
	Availability int `json:"availability"`
}

// InventoryMatrix — матрица доступности store → product → запись.
type InventoryMatrix map[string]map[string]InventoryRecord

// Put — записывает запись в матрицу.
func (m InventoryMatrix) Put(storeID, productID string, rec InventoryRecord) {
	row, ok := m[storeID]
	if !ok {
		row = make(map[string]InventoryRecord)
		m[storeID] = row
	}
	row[productID] = rec
}
