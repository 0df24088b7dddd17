package countries

import (
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type CountriesSuite struct {
	repo      *Repository
	testCodes []map[string]string
}

var _ = Suite(&CountriesSuite{})

func (s *CountriesSuite) SetUpSuite(c *C) {
	var err error
	s.repo, err = New()
	c.Assert(err, IsNil)

	s.testCodes = append(s.testCodes, map[string]string{"code": "CA", "alpha2": "CA", "name": "Canada", "currency": "CAD"})
	s.testCodes = append(s.testCodes, map[string]string{"code": "usa", "alpha2": "US", "name": "United States", "currency": "USD"})
	s.testCodes = append(s.testCodes, map[string]string{"code": "250", "alpha2": "FR", "name": "France", "currency": "EUR"})
	s.testCodes = append(s.testCodes, map[string]string{"code": "GER", "alpha2": "DE", "name": "Germany", "currency": "EUR"})
	s.testCodes = append(s.testCodes, map[string]string{"code": "SHN", "alpha2": "SH", "name": "Saint Helena, Ascension and Tristan da Cunha", "currency": "GBP"})
}

func (s *CountriesSuite) TestNew(c *C) {
	c.Assert(s.repo, Not(IsNil))
	c.Assert(s.repo.Len(), Not(Equals), 0)
	c.Assert(s.repo.GetRawData(), FitsTypeOf, []CountryRecord(nil))
}

func (s *CountriesSuite) TestGetByCode(c *C) {
	for _, v := range s.testCodes {
		country, ok := s.repo.GetByCode(v["code"])
		c.Assert(ok, Equals, true, Commentf("code %s", v["code"]))
		c.Assert(country.Alpha2Code(), Equals, v["alpha2"])
		c.Assert(country.CommonName(), Equals, v["name"])

		cur, err := country.Currency()
		c.Assert(err, IsNil)
		c.Assert(cur.Code(), Equals, v["currency"])
	}

	_, ok := s.repo.GetByCode("")
	c.Assert(ok, Equals, false)
	_, ok = s.repo.GetByCode(" ")
	c.Assert(ok, Equals, false)
}

func (s *CountriesSuite) TestCollectAllOrder(c *C) {
	got := s.repo.CollectAll("MT", "CA")
	c.Assert(got.Keys(), DeepEquals, []string{"MT", "CA"})

	first, country, ok := got.First()
	c.Assert(ok, Equals, true)
	c.Assert(first, Equals, "MT")
	c.Assert(country.CommonName(), Equals, "Malta")
}

func (s *CountriesSuite) TestDropdown(c *C) {
	list, err := s.repo.GetListForDropdown("cca3", true, "fra")
	c.Assert(err, IsNil)
	name, ok := list.Get("USA")
	c.Assert(ok, Equals, true)
	c.Assert(name, Equals, "Les états-unis d'Amérique")

	_, err = s.repo.GetListForDropdown("population", false, "")
	c.Assert(err, ErrorMatches, `unknown country field: "population"`)
}
