package domain

import "iter"

// ProductSet is an unordered set of products compared by identity.
// The zero value is an empty set ready to use. Copies of a non-empty set share members.
type ProductSet struct {
	members map[*Product]struct{}
}

func NewProductSet(products ...*Product) ProductSet {
	s := ProductSet{members: make(map[*Product]struct{}, len(products))}
	for _, p := range products {
		s.Add(p)
	}
	return s
}

// Add reports whether p was added, false if it was already a member.
func (s *ProductSet) Add(p *Product) bool {
	if p == nil {
		return false
	}
	if s.members == nil {
		s.members = make(map[*Product]struct{})
	}
	if _, ok := s.members[p]; ok {
		return false
	}
	s.members[p] = struct{}{}
	return true
}

// Remove reports whether p was a member.
func (s *ProductSet) Remove(p *Product) bool {
	if _, ok := s.members[p]; !ok {
		return false
	}
	delete(s.members, p)
	return true
}

func (s *ProductSet) Contains(p *Product) bool {
	_, ok := s.members[p]
	return ok
}

func (s *ProductSet) Len() int {
	return len(s.members)
}

func (s *ProductSet) All() iter.Seq[*Product] {
	return func(yield func(*Product) bool) {
		for p := range s.members {
			if !yield(p) {
				return
			}
		}
	}
}

func (s *ProductSet) Slice() []*Product {
	products := make([]*Product, 0, len(s.members))
	for p := range s.members {
		products = append(products, p)
	}
	return products
}
