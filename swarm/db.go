package swarm

import "fmt"

const (
	// TblParticles is the name of the sql database table that contains
	// positions and objective values for particles for each iteration.
	TblParticles = "swarmparticles"
	// TblParticlesBest is the name of the sql database table that contains
	// each particle's personal best position at each iteration.
	TblParticlesBest = "swarmparticlesbest"
	// TblBest is the name of the sql database table that contains the best
	// position for the entire swarm at each iteration.
	TblBest = "swarmbest"
)

func (s *Swarm) initdb() error {
	if s.db == nil {
		return nil
	}

	stmts := []string{
		"CREATE TABLE IF NOT EXISTS " + TblParticles + " (particle INTEGER, iter INTEGER, val REAL" + s.xdbsql("define") + ");",
		"CREATE TABLE IF NOT EXISTS " + TblParticlesBest + " (particle INTEGER, iter INTEGER, best REAL" + s.xdbsql("define") + ");",
		"CREATE TABLE IF NOT EXISTS " + TblBest + " (iter INTEGER, val REAL" + s.xdbsql("define") + ");",
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("swarm: creating db tables: %v", err)
		}
	}
	return nil
}

// updateDb records the post-step state of every particle plus the swarm best.
// vals holds the maximize-view values of the particles' current positions;
// everything is stored in the caller's natural direction.
func (s *Swarm) updateDb(vals []float64) error {
	if s.db == nil {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("swarm: recording iteration %v: %v", s.count, err)
	}

	s0 := "INSERT INTO " + TblParticles + " (particle,iter,val" + s.xdbsql("x") + ") VALUES (?,?,?" + s.xdbsql("?") + ");"
	s1 := "INSERT INTO " + TblParticlesBest + " (particle,iter,best" + s.xdbsql("x") + ") VALUES (?,?,?" + s.xdbsql("?") + ");"
	for i, p := range s.Pop {
		args := []interface{}{p.Id, s.count, s.obj.FromMax(vals[i])}
		args = append(args, pos2iface(p.Pos)...)
		if _, err := tx.Exec(s0, args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("swarm: recording iteration %v: %v", s.count, err)
		}

		args = []interface{}{p.Id, s.count, s.obj.FromMax(p.BestVal)}
		args = append(args, pos2iface(p.BestPos)...)
		if _, err := tx.Exec(s1, args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("swarm: recording iteration %v: %v", s.count, err)
		}
	}

	s2 := "INSERT INTO " + TblBest + " (iter,val" + s.xdbsql("x") + ") VALUES (?,?" + s.xdbsql("?") + ");"
	args := []interface{}{s.count, s.BestVal()}
	args = append(args, pos2iface(s.bestPos)...)
	if _, err := tx.Exec(s2, args...); err != nil {
		tx.Rollback()
		return fmt.Errorf("swarm: recording iteration %v: %v", s.count, err)
	}

	return tx.Commit()
}

func (s *Swarm) xdbsql(op string) string {
	str := ""
	for i := range s.Pop[0].Pos {
		switch op {
		case "?":
			str += ",?"
		case "define":
			str += fmt.Sprintf(",x%v REAL", i)
		case "x":
			str += fmt.Sprintf(",x%v", i)
		default:
			panic("invalid db op " + op)
		}
	}
	return str
}

func pos2iface(pos []float64) []interface{} {
	iface := make([]interface{}, 0, len(pos))
	for _, v := range pos {
		iface = append(iface, v)
	}
	return iface
}
