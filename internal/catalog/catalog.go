package catalog

import "cfdsmoke/internal/domain"

// shortCases run on every invocation, in this order. Short tests take up to
// about twenty minutes each on a workstation.
var shortCases = []string{
	"2D/sharp-cone-20-degrees/sg/cone20.test",
	"2D/sharp-cone-20-degrees/sg-mpi/cone20-mpi.test",
	"2D/sharp-cone-20-degrees/usg/cone20-usg.test",
	"2D/sharp-cone-20-degrees/usg-su2/cone20-usg-su2.test",
	"2D/moving-grid/piston-w-const-vel/simple/piston-test.rb",
	"2D/moving-grid/piston-in-tube/piston-1-block/pit1-test.rb",
	"2D/moving-grid/piston-in-tube/piston-2-block/pit2-test.rb",
	"3D/sod-shock-tube/sg/sod.test",
	"3D/sod-shock-tube/usg/sod.test",
	"3D/connection-test/connection-shared-memory.test",
	"2D/reactor-n2/reactor.test",
	"2D/sphere-sawada/fixed-grid/ss3.test",
	"2D/nozzle-conical-back/back.test",
	"2D/channel-with-bump/bump.test",
	"2D/manufactured-solution/sg/smoke-tests/mms-euler.test",
	"2D/manufactured-solution/sg/smoke-tests/mms-ns-div-theorem.test",
	"2D/manufactured-solution/sg/smoke-tests/mms-ns-least-sq-at-vtxs.test",
	"2D/manufactured-solution/sg/smoke-tests/mms-ns-least-sq-at-faces.test",
	"2D/manufactured-solution/usg/mms-euler.test",
	"2D/cht-manufactured-solution/spatial-verification/smoke-tests/single-thread.test",
	"2D/shock-fitting/cylinder/cyl-sf.test",
	"2D/oblique-detonation-wave/odw.test",
	"2D/duct-hydrogen-combustion/bittker.test",
	"2D/cylinder-giordano/two-temperature/inf_cyl.test",
	"3D/simple-ramp/sg/ramp.test",
	"2D/cylinder-dlr-n90/cpu-chem/n90.test",
	"2D/binary-diffusion/bd.test",
	"2D/nozzle-shock-tunnel-t4m4/t4m4.test",
}

// longCases are appended after the short cases when long tests are enabled
var longCases = []string{
	"2D/turb-flat-plate/turb_flat_plate.test",
	"2D/nenzfr-Mach4-nozzle-noneq/nozzle-noneq.test",
	"2D/Rutowski-hemisphere/Ms_12.70/Rutowski-short.test",
}

// MetisCase needs the gpmetis partitioner to build its grid
const MetisCase = "2D/sharp-cone-20-degrees/usg-metis/cone20-usg-metis.test"

// OptionalCase is a short case included only when Available returns true.
// It is placed directly after the short case named by After.
type OptionalCase struct {
	Path      string
	After     string
	Notice    string
	Available func() bool
}

// Catalog is the curated set of cases
type Catalog struct {
	Short    []string
	Optional []OptionalCase
	Long     []string
}

// Selection is the ordered list of cases for one run
type Selection struct {
	Cases   []domain.TestCase
	Notices []string // Notices of the optional cases that were included
	Long    bool
}

// New returns the curated catalog. partitionAvailable decides whether the metis
// case is included; it is asked about the partitioner at build time.
func New(partitionAvailable func() bool) *Catalog {
	return &Catalog{
		Short: append([]string(nil), shortCases...),
		Optional: []OptionalCase{
			{
				Path:      MetisCase,
				After:     "2D/sharp-cone-20-degrees/usg-su2/cone20-usg-su2.test",
				Notice:    "Found gpmetis",
				Available: partitionAvailable,
			},
		},
		Long: append([]string(nil), longCases...),
	}
}

// Build returns the cases to run. Each optional predicate is evaluated once.
func (c *Catalog) Build(longTests bool) Selection {
	following := make(map[string][]OptionalCase)
	var notices []string
	for _, opt := range c.Optional {
		if opt.Available == nil || !opt.Available() {
			continue
		}
		following[opt.After] = append(following[opt.After], opt)
	}

	sel := Selection{Long: longTests}
	for _, p := range c.Short {
		sel.Cases = append(sel.Cases, domain.TestCase{Path: p})
		for _, opt := range following[p] {
			sel.Cases = append(sel.Cases, domain.TestCase{Path: opt.Path})
			if opt.Notice != "" {
				notices = append(notices, opt.Notice)
			}
		}
	}
	sel.Notices = notices

	if longTests {
		for _, p := range c.Long {
			sel.Cases = append(sel.Cases, domain.TestCase{Path: p})
		}
	}
	return sel
}

// BuildTestList builds the curated list from two plain answers
func BuildTestList(longTests, metisAvailable bool) []domain.TestCase {
	return New(func() bool { return metisAvailable }).Build(longTests).Cases
}
