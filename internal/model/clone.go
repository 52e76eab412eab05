package model

// Clone copia profunda de una carta. El almacén entrega y recibe copias
// para que el estado interno solo cambie a través del API de mutación.
func (l *Letter) Clone() *Letter {
	if l == nil {
		return nil
	}
	out := *l
	out.SourceRecordIDs = append([]string(nil), l.SourceRecordIDs...)
	out.MissingData = append([]string(nil), l.MissingData...)
	out.Policies = make([]Policy, len(l.Policies))
	for i, p := range l.Policies {
		out.Policies[i] = p.Clone()
	}
	return &out
}

// Clone copia profunda de una póliza
func (p Policy) Clone() Policy {
	out := p
	out.InsuredMembers = append([]string(nil), p.InsuredMembers...)
	out.ManualFields.InsuredMembers = append([]string(nil), p.ManualFields.InsuredMembers...)
	out.ManualFields.OriginalInsuredMembers = append([]string(nil), p.ManualFields.OriginalInsuredMembers...)
	return out
}
