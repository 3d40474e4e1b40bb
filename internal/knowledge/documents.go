package knowledge

// Default returns the project documents for the Qarks environmental-education app.
func Default() Base {
	b, err := New(defaultDocuments...)
	if err != nil {
		// The literals below are fixed; a failure here is a programming error.
		panic(err)
	}
	return b
}

var defaultDocuments = []Document{
	{ID: "analisis_brecha", Text: analisisBrecha},
	{ID: "autores", Text: autores},
	{ID: "estado_arte", Text: estadoArte},
	{ID: "metodologia", Text: metodologia},
}

const analisisBrecha = `Análisis de la Brecha de Investigación en Eco-Educación
Basado en la literatura reciente, la narrativa sobre la educación eco-ambiental ha cambiado de un enfoque de "sacrificio" a uno de "estilo de vida aspiracional" y "recompensas". Existen vacíos de investigación significativos.
1. Eficacia a Largo Plazo de la Gamificación y la Gratificación Instantánea
Descripción: Las mecánicas de juego son efectivas para el compromiso inicial, pero se cuestiona su capacidad para sostener un cambio de comportamiento a largo plazo. Falta investigación longitudinal.
2. Impacto Cultural y Demográfico de la Tecnología Persuasiva
Descripción: No hay suficiente investigación comparativa sobre cómo los diferentes grupos demográficos (personas mayores, comunidades de bajos ingresos, culturas no occidentales) responden a estas técnicas. El impacto cultural y generacional no está bien documentado.
3. El Debate Ético y la Privacidad en el Seguimiento de Comportamientos
Descripción: Se discuten los dilemas éticos relacionados con el seguimiento de los comportamientos de los usuarios, lo que introduce un debate fundamental sobre la privacidad y la moralidad.`

const autores = `Autores e Investigaciones Clave
1. K. L. Hsu y J. L. Chen (2022): Artículo "Gamified applications for sustainable behavior: A systematic review of design features and effectiveness". Justificación: Ofrecen una revisión sistemática de aplicaciones gamificadas.
2. S. C. Tan y K. M. Lee (2023): Artículo "From guilt to gain: The impact of positive framing on user engagement in environmental apps". Justificación: Abordan el cambio de paradigma de la culpa a la ganancia.
3. J. Li y Y. Wang (2021): Artículo "Beyond sacrifice: The role of persuasive technology in reframing sustainable lifestyles among Gen Z". Justificación: Se centran en la Generación Z y la tecnología persuasiva.
4. Y. Wu y P. Liu (2021): Artículo "The dark side of green tech: Examining ethical dilemmas in behavior-tracking sustainability apps". Justificación: Abordan la ética y privacidad en las aplicaciones.
5. K. Schulz y L. Becker (2020): Artículo "Aesthetic sustainability: How design trends and social media influence pro-environmental intentions". Justificación: Destacan la importancia de la estética y las tendencias de diseño.`

const estadoArte = `El estado del arte en aplicaciones de educación eco-ambiental ha evolucionado, alejándose del modelo de "sacrificio" para abrazar la tecnología persuasiva y el diseño de comportamiento. La corriente principal se centra en la gamificación y la influencia social para promover la sostenibilidad como un estilo de vida aspiracional.
Debates clave:
- Eficacia a largo plazo: Cuestionamiento sobre si la gratificación instantánea genera un cambio duradero.
- Eco-blanqueo (greenwashing): El riesgo de que la adopción de tendencias superficiales desvíe la atención de problemas sistémicos.
Metodologías más utilizadas:
- Estudios de experiencia de usuario (UX)
- Análisis de datos cuantitativos
- Encuestas
- Entrevistas cualitativas y grupos focales.`

const metodologia = `Metodología de Investigación
- Estudios de Experiencia de Usuario (UX) y Análisis de Datos Cuantitativos: Se centran en la medición y la interacción del usuario. Usan datos cuantitativos (tiempo de uso, frecuencia) para cuantificar el compromiso.
- Análisis de Contenido y Revisión Sistemática: Se utiliza para analizar grandes volúmenes de literatura existente. Permite identificar patrones y brechas en la investigación.
- Investigación Cualitativa (Entrevistas y Grupos Focales): Se complementa con metodologías cuantitativas para entender las motivaciones, percepciones y barreras psicológicas.`
