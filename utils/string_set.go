package utils

type StringSet map[string]bool

func (ss StringSet) Add(element string) {
	ss[element] = true
}

func (ss StringSet) Contains(element string) bool {
	return ss[element]
}

func (ss StringSet) Len() int {
	return len(ss)
}
