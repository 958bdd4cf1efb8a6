package store

const (
	gasDescHas          = "Has"
	gasDescDelete       = "Delete"
	gasDescReadFlat     = "ReadFlat"
	gasDescReadPerByte  = "ReadPerByte"
	gasDescWriteFlat    = "WriteFlat"
	gasDescWritePerByte = "WritePerByte"
	gasDescIterNextFlat = "IterNextFlat"
	gasDescValuePerByte = "ValuePerByte"
)

type gasKVStore struct {
	gasMeter  GasMeter
	gasConfig GasConfig
	parent    KVStore
}

var _ KVStore = (*gasKVStore)(nil)

// NewGasKVStore charges every access to parent against meter.
func NewGasKVStore(meter GasMeter, config GasConfig, parent KVStore) KVStore {
	return &gasKVStore{gasMeter: meter, gasConfig: config, parent: parent}
}

func (gs *gasKVStore) Get(key []byte) []byte {
	gs.gasMeter.ConsumeGas(gs.gasConfig.ReadCostFlat, gasDescReadFlat)
	value := gs.parent.Get(key)
	gs.gasMeter.ConsumeGas(gs.gasConfig.ReadCostPerByte*Gas(len(key)), gasDescReadPerByte)
	gs.gasMeter.ConsumeGas(gs.gasConfig.ReadCostPerByte*Gas(len(value)), gasDescReadPerByte)
	return value
}

func (gs *gasKVStore) Has(key []byte) bool {
	gs.gasMeter.ConsumeGas(gs.gasConfig.HasCost, gasDescHas)
	return gs.parent.Has(key)
}

func (gs *gasKVStore) Set(key, value []byte) {
	assertValidValue(value)
	gs.gasMeter.ConsumeGas(gs.gasConfig.WriteCostFlat, gasDescWriteFlat)
	gs.gasMeter.ConsumeGas(gs.gasConfig.WriteCostPerByte*Gas(len(key)), gasDescWritePerByte)
	gs.gasMeter.ConsumeGas(gs.gasConfig.WriteCostPerByte*Gas(len(value)), gasDescWritePerByte)
	gs.parent.Set(key, value)
}

func (gs *gasKVStore) Delete(key []byte) {
	gs.gasMeter.ConsumeGas(gs.gasConfig.DeleteCost, gasDescDelete)
	gs.parent.Delete(key)
}

func (gs *gasKVStore) Iterator(start, end []byte) Iterator {
	return gs.iterator(gs.parent.Iterator(start, end))
}

func (gs *gasKVStore) ReverseIterator(start, end []byte) Iterator {
	return gs.iterator(gs.parent.ReverseIterator(start, end))
}

func (gs *gasKVStore) iterator(parent Iterator) Iterator {
	gi := &gasIterator{gasMeter: gs.gasMeter, gasConfig: gs.gasConfig, parent: parent}
	gi.consumeSeekGas()
	return gi
}

type gasIterator struct {
	gasMeter  GasMeter
	gasConfig GasConfig
	parent    Iterator
}

func (gi *gasIterator) Domain() ([]byte, []byte) { return gi.parent.Domain() }

func (gi *gasIterator) Valid() bool { return gi.parent.Valid() }

// Next charges for the entry it lands on.
func (gi *gasIterator) Next() {
	gi.parent.Next()
	gi.consumeSeekGas()
}

func (gi *gasIterator) Key() []byte { return gi.parent.Key() }

func (gi *gasIterator) Value() []byte { return gi.parent.Value() }

func (gi *gasIterator) Error() error { return gi.parent.Error() }

func (gi *gasIterator) Close() error { return gi.parent.Close() }

func (gi *gasIterator) consumeSeekGas() {
	if gi.Valid() {
		key, value := gi.Key(), gi.Value()
		gi.gasMeter.ConsumeGas(gi.gasConfig.ReadCostPerByte*Gas(len(key)), gasDescValuePerByte)
		gi.gasMeter.ConsumeGas(gi.gasConfig.ReadCostPerByte*Gas(len(value)), gasDescValuePerByte)
	}
	gi.gasMeter.ConsumeGas(gi.gasConfig.IterNextCostFlat, gasDescIterNextFlat)
}
