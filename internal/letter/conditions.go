package letter

import "github.com/innova67/cartas-vencimiento/internal/model"

// Textos de condiciones fijos que se insertan en cada plantilla de carta.
// El contenido es contractual: cualquier cambio debe venir de la corredora.
const (
	// HealthConditions condiciones vigentes para las cartas de salud/vida
	HealthConditions = `Le informamos que a partir del *01/05/2025*, se excluye la cobertura del certificado asistencia al viajero y las pólizas se emiten en moneda nacional (BS)`

	// GeneralConditions condiciones vigentes para las cartas de ramos generales
	GeneralConditions = "A partir del *01/12/2024* se aplica :\n" +
		"-Deducible coaseguro: 10% del valor del siniestro mínimo Bs 1.000 aplicable para las coberturas de Daños Propios, Conmoción Civil, Huelgas, Daño Malicioso, Sabotaje, Vandalismo y Terrorismo.\n" +
		"-Extraterritorialidad: PAGO DE EXTRA PRIMA DE BS 400 (CONTADO) SI ES SOLICITADO EN LA RENOVACION DE LA POLIZA, POSTERIOR A LA RENOVACION DE LA POLIZA, EXTRA PRIMA DE BS 500.-\n" +
		"“ La suscripción de los seguros seguro es Bs y considerando que en los últimos meses se ha observado un incremento significativo en el valor de mercado de los bienes en general en nuestro país, solicitamos la revisión del valor asegurado de su vehículo. La finalidad de esta actualización es garantizar una protección correcta de su patrimonio y acorde al valor real actual de los bien asegurado, con el fin de evitar la aplicación de infraseguro en caso de siniestro, como se encuentra establecido en el Código de Comercio, Art.1056.”"
)

// ConditionsFor devuelve el texto de condiciones de la plantilla
func ConditionsFor(t model.TemplateType) string {
	if t == model.TemplateSalud {
		return HealthConditions
	}
	return GeneralConditions
}
